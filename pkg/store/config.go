package store

import (
	"github.com/mitchellh/mapstructure"

	errUtils "github.com/cloudposse/tokenicon/errors"
)

func parseOptions(options map[string]interface{}, target interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return errUtils.Build(errUtils.ErrStoreOptions).WithCause(err).Err()
	}
	if err := decoder.Decode(options); err != nil {
		return errUtils.Build(errUtils.ErrStoreOptions).WithCause(err).Err()
	}
	return nil
}
