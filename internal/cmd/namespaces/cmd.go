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

package namespaces

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
)

const CmdName = "namespaces"
const CmdHelp = "List the namespaces usable by mint -namespace"

type Namespace struct {
	Name string `json:"name" yaml:"name"`
	UUID string `json:"uuid" yaml:"uuid"`
}

func CmdFn() error {
	return run(os.Args[2:], os.Stdout)
}

func run(args []string, w io.Writer) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := cmd.CheckFormat(flags.Format, "text", "json", "yaml"); err != nil {
		return err
	}

	cfg, err := cmd.LoadConfig(flags.CfgDir)
	if err != nil {
		return err
	}

	var list []Namespace
	for name, u := range cfg.All() {
		list = append(list, Namespace{Name: name, UUID: u.String()})
	}

	switch flags.Format {
	case "json":
		return cmd.WriteJSON(w, list)
	case "yaml":
		return cmd.WriteYAML(w, list)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUUID")
	for _, ns := range list {
		fmt.Fprintf(tw, "%s\t%s\n", ns.Name, ns.UUID)
	}
	return tw.Flush()
}
