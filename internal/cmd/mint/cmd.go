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

package mint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
	"github.com/jlsalvador/simple-uuid/internal/config"
	"github.com/jlsalvador/simple-uuid/pkg/cli/term"
	"github.com/jlsalvador/simple-uuid/pkg/digest"
	"github.com/jlsalvador/simple-uuid/pkg/log"
	"github.com/jlsalvador/simple-uuid/pkg/uuid"

	"golang.org/x/sync/errgroup"
)

const CmdName = "mint"
const CmdHelp = "Mint UUIDs of version 0, 1, 3, 4 or 5"

var (
	ErrMissingName  = errors.New("name-based UUIDs need at least one name")
	ErrInvalidCount = errors.New("count and workers must be positive")
)

// Mock.
var nodeFromInterfaces = uuid.NodeFromInterfaces

var lineFormats = map[string]func(uuid.UUID) string{
	"canonical": uuid.UUID.String,
	"urn":       uuid.UUID.URN,
	"hex":       uuid.UUID.Hex,
	"int": func(u uuid.UUID) string {
		return u.BigInt().String()
	},
	"bytes": func(u uuid.UUID) string {
		b := u.Bytes()
		return fmt.Sprint(b[:])
	},
}

// Digest algorithm of each name-based version.
var nameBasedAlgorithms = map[uuid.Version]string{
	uuid.VersionMD5:  "md5",
	uuid.VersionSHA1: "sha1",
}

var formats = []string{"canonical", "urn", "hex", "int", "bytes", "json", "yaml"}

func CmdFn() error {
	var stdin io.Reader
	if !term.IsTerminal(os.Stdin) {
		stdin = os.Stdin
	}
	return run(os.Args[2:], stdin, os.Stdout)
}

// readNames returns the non-empty lines of r.
func readNames(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name := strings.TrimSuffix(scanner.Text(), "\r"); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names from stdin: %w", err)
	}

	return names, nil
}

// run mints as flagged by args. Without -name, names for versions 3 and 5
// are read line by line from stdin when it is not nil.
func run(args []string, stdin io.Reader, w io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	nameBased := flags.Version == int(uuid.VersionMD5) || flags.Version == int(uuid.VersionSHA1)
	if nameBased && len(flags.Names) == 0 && stdin != nil {
		if flags.Names, err = readNames(stdin); err != nil {
			return err
		}
	}

	if err := cmd.CheckFormat(flags.Format, formats...); err != nil {
		return err
	}

	cfg, err := cmd.LoadConfig(flags.CfgDir)
	if err != nil {
		return err
	}

	start := time.Now()
	uuids, err := mint(flags, cfg)
	if err != nil {
		return err
	}

	log.Debug(
		"event.dataset", "mint",
		"event.duration", time.Since(start).Nanoseconds(),
		"uuid.version", flags.Version,
		"uuid.count", len(uuids),
		"workers", flags.Workers,
	).Print()

	return write(w, flags.Format, uuids)
}

func newClock(node string, cfg *config.Config) (*uuid.Clock, error) {
	switch node {
	case "":
		if cfg.Node != nil {
			return uuid.NewClock(uuid.WithNode(*cfg.Node))
		}
		return uuid.DefaultClock(), nil

	case "random":
		return uuid.NewClock()

	case "mac":
		n, err := nodeFromInterfaces()
		if err != nil {
			return nil, err
		}
		return uuid.NewClock(uuid.WithNode(n))

	default:
		n, err := config.ParseNode(node)
		if err != nil {
			return nil, err
		}
		return uuid.NewClock(uuid.WithNode(n))
	}
}

// generate returns n UUIDs built by gen, running at most workers calls
// at once. Results keep the order of i.
func generate(n, workers int, gen func(i int) (uuid.UUID, error)) ([]uuid.UUID, error) {
	result := make([]uuid.UUID, n)

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			u, err := gen(i)
			if err != nil {
				return err
			}
			result[i] = u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func mint(flags Flags, cfg *config.Config) ([]uuid.UUID, error) {
	if flags.Count < 1 || flags.Workers < 1 {
		return nil, fmt.Errorf("%w: count %d, workers %d", ErrInvalidCount, flags.Count, flags.Workers)
	}
	if flags.Version < 0 || flags.Version > 15 {
		return nil, fmt.Errorf("%w: %d", uuid.ErrUnsupportedVersion, flags.Version)
	}

	switch v := uuid.Version(flags.Version); v {
	case uuid.VersionNil:
		return generate(flags.Count, flags.Workers, func(int) (uuid.UUID, error) {
			return uuid.NewV0(), nil
		})

	case uuid.VersionTime:
		clock, err := newClock(flags.Node, cfg)
		if err != nil {
			return nil, err
		}
		return generate(flags.Count, flags.Workers, func(int) (uuid.UUID, error) {
			return clock.NewV1(), nil
		})

	case uuid.VersionMD5, uuid.VersionSHA1:
		if len(flags.Names) == 0 {
			return nil, ErrMissingName
		}
		ns, err := cfg.Namespace(flags.Namespace)
		if err != nil {
			return nil, fmt.Errorf("%w (known: %s)", err, strings.Join(slices.Collect(cfg.Names()), ", "))
		}
		algo := nameBasedAlgorithms[v]
		if _, err := digest.NewHasher(algo); err != nil {
			return nil, err
		}
		return generate(len(flags.Names), flags.Workers, func(i int) (uuid.UUID, error) {
			h, err := digest.NewHasher(algo)
			if err != nil {
				return uuid.Nil, err
			}
			return uuid.NewNameBased(h, ns, flags.Names[i], v), nil
		})

	case uuid.VersionRandom:
		return generate(flags.Count, flags.Workers, func(int) (uuid.UUID, error) {
			return uuid.NewV4()
		})

	default:
		return nil, fmt.Errorf("%w: %s", uuid.ErrUnsupportedVersion, v)
	}
}

func write(w io.Writer, format string, uuids []uuid.UUID) error {
	switch format {
	case "json":
		return cmd.WriteJSON(w, uuids)
	case "yaml":
		return cmd.WriteYAML(w, uuids)
	}

	toString := lineFormats[format]
	for _, u := range uuids {
		if _, err := fmt.Fprintln(w, toString(u)); err != nil {
			return err
		}
	}
	return nil
}
