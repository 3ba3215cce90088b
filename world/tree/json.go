// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import (
	"fmt"
	"github.com/SoftbearStudios/quadsat/world"
	jsoniter "github.com/json-iterator/go"
)

// MarshalJSON writes {"region":{...},"capacity":n,"bounds":[...]}.
// Tree shape is not stored because it only depends on the bounds.
func (idx *Index) MarshalJSON() ([]byte, error) {
	stream := world.JSON.BorrowStream(nil)
	defer world.JSON.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("region")
	world.WriteBound(stream, idx.Region())
	stream.WriteMore()
	stream.WriteObjectField("capacity")
	stream.WriteInt(idx.Capacity())
	stream.WriteMore()
	stream.WriteObjectField("bounds")
	stream.WriteArrayStart()
	first := true
	idx.ForBounds(func(bound world.Bound) bool {
		if first {
			first = false
		} else {
			stream.WriteMore()
		}
		world.WriteBound(stream, bound)
		return false
	})
	stream.WriteArrayEnd()
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON replaces the contents of idx with a snapshot from MarshalJSON.
func (idx *Index) UnmarshalJSON(data []byte) error {
	iter := world.JSON.BorrowIterator(data)
	defer world.JSON.ReturnIterator(iter)

	var (
		region   world.AABB
		capacity int
		bounds   []world.Bound
	)

	iter.ReadObjectCB(func(i *jsoniter.Iterator, field string) bool {
		switch field {
		case "region":
			bound := world.ReadBound(i)
			if box, ok := bound.(world.AABB); ok {
				region = box
			} else if i.Error == nil {
				i.ReportError("Index.UnmarshalJSON", "region is not a box")
			}
		case "capacity":
			capacity = i.ReadInt()
		case "bounds":
			i.ReadArrayCB(func(i *jsoniter.Iterator) bool {
				bound := world.ReadBound(i)
				if i.Error != nil {
					return false
				}
				if bound == nil {
					i.ReportError("Index.UnmarshalJSON", "bound is null")
					return false
				}
				bounds = append(bounds, bound)
				return true
			})
		default:
			i.Skip()
		}
		return i.Error == nil
	})

	if iter.Error != nil {
		return iter.Error
	}

	*idx = *New(region, capacity)
	for _, bound := range bounds {
		if !idx.Insert(bound) {
			return fmt.Errorf("could not insert %s into %s", world.BoundString(bound), world.BoundString(region))
		}
	}
	return nil
}

func (idx *Index) String() string {
	buf, err := idx.MarshalJSON()
	if err != nil {
		panic(err.Error())
	}
	return string(buf)
}
