// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

// Package resolver turns lookup-reference fields into display labels.
//
// Resolution is a presentation concern and must never block a read: every
// lookup path terminates in a label. A found target is rendered by its
// breadcrumb, falling back to its name, falling back to the raw identifier;
// an empty reference renders the configured "not selected" sentinel; an
// unknown id — or a target type for which the caller supplied no candidates
// at all — renders the raw identifier. The resolver itself performs no
// fetches: callers pre-fetch candidate sets in batch (see [Prefetch]), so
// resolving N entities against one target type costs one load, not N.
package resolver
