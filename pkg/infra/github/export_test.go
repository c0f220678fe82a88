package github

import "github.com/m-mizutani/mekupdater/pkg/domain/model"

func Decode[T any](body []byte) (*T, model.Outcome, error) {
	return decode[T](body)
}

func ClassifyTransportFault(err error) model.Outcome {
	return classifyTransportFault(err)
}
