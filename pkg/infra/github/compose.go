package github

import (
	"fmt"

	"github.com/m-mizutani/mekupdater/pkg/domain/model"
)

// compose merges a transport response and the decoding of its body into a
// single result.
//
//  1. A transport failure is returned unchanged and the body is not decoded.
//  2. A body that decodes into T is a success regardless of the status code.
//  3. An undecodable body with a non-2xx status is an unsuccessful request.
//  4. An undecodable body with a 2xx status keeps the decode outcome.
func compose[T any](resp *response) model.OperationResult[T] {
	if !resp.outcome.IsSuccess() {
		return model.Failed[T](resp.outcome, resp.message)
	}

	value, outcome, err := decode[T](resp.body)
	if outcome.IsSuccess() {
		return model.OperationResult[T]{
			Outcome: model.OutcomeSuccess,
			Value:   value,
		}
	}

	if !resp.isSuccessStatus() {
		return model.Failed[T](model.OutcomeUnsuccessfulRequest,
			fmt.Sprintf("unsuccessful http request. Status code: '%s' Request: '%s'", resp.status, resp.request))
	}

	return model.Failed[T](outcome, "bad json string: "+err.Error())
}
