//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package bbtdecrypt

import (
	"errors"
	"fmt"

	"github.com/ezrec/bbtdecrypt/feistel"
)

// ConfigurationError is a problem with the key material
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (ce *ConfigurationError) Error() string {
	if ce.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ce.Key, ce.Reason, ce.Err)
	}

	return fmt.Sprintf("%s: %s", ce.Key, ce.Reason)
}

func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// InputSizeError is an encrypted file that is not a whole number of blocks
type InputSizeError struct {
	Size   int64
	Reason string
}

func (ie *InputSizeError) Error() string {
	return fmt.Sprintf("input of %d bytes: %s", ie.Size, ie.Reason)
}

// configurationError converts a table size problem from the cipher
func configurationError(key1, key2 string, err error) error {
	var kse *feistel.KeySizeError
	if !errors.As(err, &kse) {
		return err
	}

	key := key1
	if kse.Table == "S" {
		key = key2
	}

	return &ConfigurationError{
		Key:    key,
		Reason: "key table too short or not a whole number of blocks",
		Err:    err,
	}
}
