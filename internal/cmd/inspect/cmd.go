// Copyright 2025 José Luis Salvador Rufo <salvador.joseluis@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package inspect implements the "inspect" command, which coerces each
// argument into a UUID and reports its representations and fields.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
	"github.com/jlsalvador/simple-uuid/pkg/uuid"
)

const CmdName = "inspect"
const CmdHelp = "Print the representations and fields of the given UUIDs"

var ErrMissingValue = errors.New("nothing to inspect")

type Fields struct {
	TimeLow            uint32 `json:"timeLow" yaml:"timeLow"`
	TimeMid            uint16 `json:"timeMid" yaml:"timeMid"`
	TimeHighAndVersion uint16 `json:"timeHighAndVersion" yaml:"timeHighAndVersion"`
	ClockSeqHigh       uint8  `json:"clockSeqHighAndReserved" yaml:"clockSeqHighAndReserved"`
	ClockSeqLow        uint8  `json:"clockSeqLow" yaml:"clockSeqLow"`
	ClockSeq           uint16 `json:"clockSeq" yaml:"clockSeq"`
	Node               string `json:"node" yaml:"node"`
}

type Report struct {
	Input     string     `json:"input" yaml:"input"`
	Shape     string     `json:"shape" yaml:"shape"`
	Canonical string     `json:"canonical" yaml:"canonical"`
	URN       string     `json:"urn" yaml:"urn"`
	Integer   string     `json:"integer" yaml:"integer"`
	Bytes     []int      `json:"bytes" yaml:"bytes,flow"`
	Version   int        `json:"version" yaml:"version"`
	Algorithm string     `json:"algorithm" yaml:"algorithm"`
	Variant   string     `json:"variant" yaml:"variant"`
	Fields    Fields     `json:"fields" yaml:"fields"`
	Timestamp *uint64    `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Time      *time.Time `json:"time,omitempty" yaml:"time,omitempty"`
}

// NewReport coerces v with [uuid.The] and describes the result.
func NewReport(v string) (Report, error) {
	u, err := uuid.The(v)
	if err != nil {
		return Report{}, err
	}

	b := u.Bytes()
	octets := make([]int, len(b))
	for i, o := range b {
		octets[i] = int(o)
	}

	node := u.NodeID()
	r := Report{
		Input:     v,
		Shape:     uuid.ShapeOf(v).String(),
		Canonical: u.String(),
		URN:       u.URN(),
		Integer:   u.BigInt().String(),
		Bytes:     octets,
		Version:   int(u.Version()),
		Algorithm: u.Version().String(),
		Variant:   u.Variant().String(),
		Fields: Fields{
			TimeLow:            u.TimeLow(),
			TimeMid:            u.TimeMid(),
			TimeHighAndVersion: u.TimeHighAndVersion(),
			ClockSeqHigh:       u.ClockSeqHigh(),
			ClockSeqLow:        u.ClockSeqLow(),
			ClockSeq:           u.ClockSeq(),
			Node:               fmt.Sprintf("%x", node[:]),
		},
	}

	if ts, ok := u.Timestamp(); ok {
		r.Timestamp = &ts
	}
	if t, ok := u.Time(); ok {
		t = t.UTC()
		r.Time = &t
	}

	return r, nil
}

func CmdFn() error {
	return run(os.Args[2:], os.Stdout)
}

func run(args []string, w io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := cmd.CheckFormat(flags.Format, "json", "yaml"); err != nil {
		return err
	}

	if len(flags.Values) == 0 {
		return ErrMissingValue
	}

	reports := make([]Report, 0, len(flags.Values))
	for _, v := range flags.Values {
		r, err := NewReport(v)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if flags.Format == "json" {
		return cmd.WriteJSON(w, reports)
	}
	return cmd.WriteYAML(w, reports)
}
