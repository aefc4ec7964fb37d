// Copyright (c) 2017 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package ioc

import (
	"fmt"

	"github.com/rfcommon/ioc/iocevent"
)

// DefaultKey is the key used when no key is given.
const DefaultKey = "default"

// Lifetime describes how often a registered type is constructed.
type Lifetime int

const (
	// Transient types are constructed anew on every lookup. They may have any
	// number of keyed constructors.
	Transient Lifetime = iota
	// Singleton types are constructed at most once, on first lookup.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// DuplicateKeyPolicy decides what happens when a second constructor is
// registered for a key a transient type already has.
type DuplicateKeyPolicy int

const (
	// DuplicateKeysReject fails the registration with a
	// ConflictingRegistrationError.
	DuplicateKeysReject DuplicateKeyPolicy = iota
	// DuplicateKeysIgnore keeps the first constructor and silently drops
	// the new one.
	DuplicateKeysIgnore
)

func (p DuplicateKeyPolicy) String() string {
	switch p {
	case DuplicateKeysReject:
		return "reject"
	case DuplicateKeysIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("DuplicateKeyPolicy(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p DuplicateKeyPolicy) MarshalText() ([]byte, error) {
	switch p {
	case DuplicateKeysReject, DuplicateKeysIgnore:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("unknown duplicate key policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *DuplicateKeyPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "reject", "":
		*p = DuplicateKeysReject
	case "ignore":
		*p = DuplicateKeysIgnore
	default:
		return fmt.Errorf("unknown duplicate key policy %q", text)
	}
	return nil
}

// An Option configures a Container.
type Option interface {
	fmt.Stringer

	apply(*Container)
}

// WithLogger sends the container's events to the given logger.
func WithLogger(l iocevent.Logger) Option {
	return loggerOption{l}
}

type loggerOption struct{ logger iocevent.Logger }

func (o loggerOption) apply(c *Container) {
	if o.logger == nil {
		c.log = iocevent.NopLogger
		return
	}
	c.log = o.logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("ioc.WithLogger(%v)", o.logger)
}

// WithDuplicateKeys sets the policy applied when a key is registered twice
// for the same type. The default is DuplicateKeysReject.
func WithDuplicateKeys(p DuplicateKeyPolicy) Option {
	return duplicateKeysOption(p)
}

type duplicateKeysOption DuplicateKeyPolicy

func (o duplicateKeysOption) apply(c *Container) {
	c.duplicateKeys = DuplicateKeyPolicy(o)
}

func (o duplicateKeysOption) String() string {
	return fmt.Sprintf("ioc.WithDuplicateKeys(%v)", DuplicateKeyPolicy(o))
}
