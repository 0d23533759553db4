// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"context"

	"github.com/MKhiriev/go-config-load/builder"
)

// LoadFunc turns a builder, already holding one file source per resolved
// path, into a T. Implementations usually add further layers (environment,
// defaults), build, and decode.
type LoadFunc[T any] func(b *builder.Builder) (T, error)

// Target is implemented by configuration types that know how to fill
// themselves from a builder, typically with a pointer receiver:
//
//	func (c *AppConfig) Load(b *builder.Builder) error {
//		k, err := b.AddSource(builder.Environment("APP", "_")).Build()
//		if err != nil {
//			return err
//		}
//		return builder.Unmarshal(k, c)
//	}
type Target interface {
	Load(b *builder.Builder) error
}

// AsyncLoadFunc is the [AsyncLoader] counterpart of [LoadFunc].
type AsyncLoadFunc[T any] func(ctx context.Context, b *builder.AsyncBuilder) (T, error)

// AsyncTarget is the [AsyncLoader] counterpart of [Target].
type AsyncTarget interface {
	LoadAsync(ctx context.Context, b *builder.AsyncBuilder) error
}

// Decode is a [LoadFunc] that builds b as is and decodes the result into a
// T with [builder.Unmarshal].
func Decode[T any](b *builder.Builder) (T, error) {
	var out T
	k, err := b.Build()
	if err != nil {
		return out, err
	}

	err = builder.Unmarshal(k, &out)
	return out, err
}

// DecodeAsync is the [AsyncLoadFunc] counterpart of [Decode].
func DecodeAsync[T any](ctx context.Context, b *builder.AsyncBuilder) (T, error) {
	var out T
	k, err := b.Build(ctx)
	if err != nil {
		return out, err
	}

	err = builder.Unmarshal(k, &out)
	return out, err
}
