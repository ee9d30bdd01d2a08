//go:build nosdl

package main

import (
	"context"
	"errors"
)

func (b *backend) runSDL(context.Context) error {
	return errors.New("navdemo was built without SDL support")
}
