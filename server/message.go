// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"errors"
	"github.com/SoftbearStudios/quadsat/world"
	"github.com/SoftbearStudios/quadsat/world/tree"
	jsoniter "github.com/json-iterator/go"
)

type messageType string

const (
	messageCount  = messageType("count")
	messageInsert = messageType("insert")
	messageMove   = messageType("move")
	messageQuery  = messageType("query")
	messageRemove = messageType("remove")
)

var (
	errMissingBound = errors.New("missing bound")
	errMissingMoved = errors.New("missing moved")
)

type (
	// inbound is a request from a client.
	// ID is echoed back so clients can pipeline requests.
	inbound struct {
		ID    int
		Type  messageType
		Bound world.Bound
		Moved world.Bound
	}

	// outbound answers exactly one inbound.
	outbound struct {
		ID      int
		OK      bool
		Count   int
		Results []tree.Result
		Error   string
		typ     messageType
	}
)

func decodeInbound(data []byte) (in inbound, err error) {
	iter := world.JSON.BorrowIterator(data)
	defer world.JSON.ReturnIterator(iter)

	iter.ReadObjectCB(func(i *jsoniter.Iterator, field string) bool {
		switch field {
		case "id":
			in.ID = i.ReadInt()
		case "type":
			in.Type = messageType(i.ReadString())
		case "bound":
			in.Bound = world.ReadBound(i)
		case "moved":
			in.Moved = world.ReadBound(i)
		default:
			i.Skip()
		}
		return true
	})

	if iter.Error != nil {
		err = iter.Error
		return
	}

	switch in.Type {
	case messageInsert, messageRemove, messageQuery:
		if in.Bound == nil {
			err = errMissingBound
		}
	case messageMove:
		if in.Bound == nil {
			err = errMissingBound
		} else if in.Moved == nil {
			err = errMissingMoved
		}
	}
	return
}

func (out *outbound) encode() ([]byte, error) {
	stream := world.JSON.BorrowStream(nil)
	defer world.JSON.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("id")
	stream.WriteInt(out.ID)

	switch {
	case out.Error != "":
		stream.WriteMore()
		stream.WriteObjectField("error")
		stream.WriteString(out.Error)
	case out.typ == messageCount:
		stream.WriteMore()
		stream.WriteObjectField("count")
		stream.WriteInt(out.Count)
	case out.typ == messageQuery:
		stream.WriteMore()
		stream.WriteObjectField("results")
		stream.WriteArrayStart()
		for i, result := range out.Results {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("bound")
			world.WriteBound(stream, result.Bound)
			stream.WriteMore()
			stream.WriteObjectField("mtv")
			stream.WriteVal(result.MTV)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteMore()
		stream.WriteObjectField("ok")
		stream.WriteBool(out.OK)
	}

	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// handle applies in to index.
func handle(index *tree.SyncIndex, in inbound) (out outbound) {
	out.ID = in.ID
	out.typ = in.Type

	switch in.Type {
	case messageCount:
		out.Count = index.Count()
	case messageInsert:
		out.OK = index.Insert(in.Bound)
	case messageMove:
		out.OK = index.Move(in.Bound, in.Moved)
	case messageQuery:
		out.Results = index.Query(in.Bound)
	case messageRemove:
		out.OK = index.Remove(in.Bound)
	default:
		out.Error = "invalid message type " + string(in.Type)
	}
	return
}
