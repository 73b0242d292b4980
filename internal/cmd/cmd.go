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

// Package cmd holds what every subcommand shares: the environment prefix,
// the dispatcher, configuration loading and structured output.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jlsalvador/simple-uuid/internal/config"
	"github.com/jlsalvador/simple-uuid/internal/version"
	"github.com/jlsalvador/simple-uuid/pkg/common"
)

const ENV_PREFIX = "SIMPLE_UUID_"

var ErrUnknownCommand = errors.New("unknown command")

type Command struct {
	Name string
	Help string
	Fn   func() error
}

// Usage prints the available commands.
func Usage(w io.Writer, cmds []Command) {
	fmt.Fprintf(w, "%s v%s\n", version.AppName, version.AppVersion)
	fmt.Fprintf(w, "Mints, converts and inspects RFC-4122 UUIDs.\n\n")
	fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n\nCommands:\n", version.AppName)
	for _, c := range cmds {
		fmt.Fprintf(w, "  %-12s%s\n", c.Name, c.Help)
	}
	fmt.Fprintf(w, "  %-12s%s\n", "help", "Print this help and exit")
	fmt.Fprintf(w, "\nRun '%s <command> -h' for the flags of a command.\n", version.AppName)
	fmt.Fprintf(w, "Flag defaults are read from %s* environment variables.\n", ENV_PREFIX)
}

// Dispatch runs the command named by args[0]. No arguments or "help"
// prints the usage to w.
func Dispatch(args []string, w io.Writer, cmds []Command) error {
	if len(args) == 0 {
		Usage(w, cmds)
		return nil
	}

	switch args[0] {
	case "help", "-h", "-help", "--help":
		Usage(w, cmds)
		return nil
	}

	for _, c := range cmds {
		if c.Name != args[0] {
			continue
		}
		if err := c.Fn(); err != nil && !errors.Is(err, flag.ErrHelp) {
			return err
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

// LoadConfig reads the YAML manifests of dirs, falling back to the comma
// separated SIMPLE_UUID_CFGDIR. Without directories only the builtin
// namespaces are available.
func LoadConfig(dirs []string) (*config.Config, error) {
	if len(dirs) == 0 {
		dirs = common.GetList(ENV_PREFIX + "CFGDIR")
	}
	if len(dirs) == 0 {
		return config.New(), nil
	}
	return config.NewFromYamlDir(dirs)
}
