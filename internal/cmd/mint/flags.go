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
	"flag"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
	cliFlag "github.com/jlsalvador/simple-uuid/pkg/cli/flag"
	"github.com/jlsalvador/simple-uuid/pkg/common"
)

type Flags struct {
	Version   int
	Namespace string
	Names     cliFlag.StringSlice
	Count     int
	Workers   int
	Format    string
	Node      string
	CfgDir    cliFlag.StringSlice
}

func parseFlags(args []string) (flags Flags, err error) {
	flagSet := flag.NewFlagSet(CmdName, flag.ContinueOnError)

	flagSet.IntVar(&flags.Version, "version", common.GetInt(common.GetEnv(cmd.ENV_PREFIX+"VERSION", "4"), 4), "UUID version: 0, 1, 3, 4 or 5")
	flagSet.StringVar(&flags.Namespace, "namespace", common.GetEnv(cmd.ENV_PREFIX+"NAMESPACE", "dns"), "Namespace for versions 3 and 5\nA builtin (dns, url, oid, x500), a configured name or a UUID")
	flagSet.Var(&flags.Names, "name", "Name for versions 3 and 5\nCould be specified multiple times, trailing arguments are names too")
	flagSet.IntVar(&flags.Count, "count", common.GetInt(common.GetEnv(cmd.ENV_PREFIX+"COUNT", "1"), 1), "How many UUIDs of versions 0, 1 and 4 to mint")
	flagSet.IntVar(&flags.Workers, "workers", common.GetInt(common.GetEnv(cmd.ENV_PREFIX+"WORKERS", "1"), 1), "Concurrent minting goroutines")
	flagSet.StringVar(&flags.Format, "format", common.GetEnv(cmd.ENV_PREFIX+"FORMAT", "canonical"), "Output format: canonical, urn, hex, int, bytes, json or yaml")
	flagSet.StringVar(&flags.Node, "node", common.GetEnv(cmd.ENV_PREFIX+"NODE", ""), "Node id for version 1: random, mac or 12 hex digits\nDefaults to the configured Node or a random one")
	flagSet.Var(&flags.CfgDir, "cfgdir", "Directory with YAML configuration files\nCould be specified multiple times")

	if err = flagSet.Parse(args); err != nil {
		return
	}

	flags.Names = append(flags.Names, flagSet.Args()...)

	return
}
