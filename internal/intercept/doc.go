// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

// Package intercept hooks the store/load boundary of the document store.
//
// BeforeStore replaces the plaintext of every field marked `vault:"encrypted"`
// with a serialised cipher envelope; AfterLoad reverses this. Store adapters
// call both hooks unconditionally for every entity they persist or
// materialise: types without markers pass through untouched, values already
// in envelope form are never encrypted twice, and absent (nil) values are
// never turned into envelopes.
//
// The hooks perform no I/O and impose no concurrency model of their own; they
// are safe to call from any goroutine.
package intercept
