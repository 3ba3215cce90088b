// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package world

import (
	"errors"
	jsoniter "github.com/json-iterator/go"
)

var (
	errAmbiguousBound = errors.New("bound has both width and r")
	errNullBound      = errors.New("bound is null")
)

// JSON is the shared json-iterator config for bounds and snapshots.
var JSON = jsoniter.Config{
	IndentionStep:                 0,
	MarshalFloatWith6Digits:       true,
	EscapeHTML:                    false,
	SortMapKeys:                   true,
	TagKey:                        "json",
	ObjectFieldMustBeSimpleString: true,
	CaseSensitive:                 true,
}.Froze()

// MarshalBound encodes a point as {"x","y"}, a box with "width" and "height" and a circle with "r".
func MarshalBound(bound Bound) ([]byte, error) {
	stream := JSON.BorrowStream(nil)
	defer JSON.ReturnStream(stream)

	WriteBound(stream, bound)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalBound is the inverse of MarshalBound.
// Shapes are told apart by which fields are present: "width" makes a box, "r" a circle.
func UnmarshalBound(data []byte) (Bound, error) {
	iter := JSON.BorrowIterator(data)
	defer JSON.ReturnIterator(iter)

	bound := ReadBound(iter)
	if iter.Error != nil {
		return nil, iter.Error
	}
	if bound == nil {
		return nil, errNullBound
	}
	return bound, nil
}

func WriteBound(stream *jsoniter.Stream, bound Bound) {
	stream.WriteObjectStart()
	stream.WriteObjectField("x")
	stream.WriteFloat32(bound.Origin().X)
	stream.WriteMore()
	stream.WriteObjectField("y")
	stream.WriteFloat32(bound.Origin().Y)

	switch b := bound.(type) {
	case AABB:
		stream.WriteMore()
		stream.WriteObjectField("width")
		stream.WriteFloat32(b.Width)
		stream.WriteMore()
		stream.WriteObjectField("height")
		stream.WriteFloat32(b.Height)
	case Circle:
		stream.WriteMore()
		stream.WriteObjectField("r")
		stream.WriteFloat32(b.R)
	}
	stream.WriteObjectEnd()
}

// ReadBound reads one bound, reporting problems through iter.Error.
// A JSON null reads as a nil Bound.
func ReadBound(iter *jsoniter.Iterator) Bound {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		return nil
	}

	var (
		box                 AABB
		r                   float32
		hasWidth, hasRadius bool
	)

	iter.ReadObjectCB(func(i *jsoniter.Iterator, field string) bool {
		switch field {
		case "x":
			box.X = i.ReadFloat32()
		case "y":
			box.Y = i.ReadFloat32()
		case "width":
			box.Width = i.ReadFloat32()
			hasWidth = true
		case "height":
			box.Height = i.ReadFloat32()
		case "r":
			r = i.ReadFloat32()
			hasRadius = true
		default:
			i.Skip()
		}
		return true
	})

	if iter.Error != nil {
		return nil
	}

	switch {
	case hasWidth && hasRadius:
		iter.ReportError("ReadBound", errAmbiguousBound.Error())
		return nil
	case hasWidth:
		return box
	case hasRadius:
		return Circle{Vec2f: box.Vec2f, R: r}
	default:
		return box.Vec2f
	}
}
