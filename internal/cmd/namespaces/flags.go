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
	"flag"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
	cliFlag "github.com/jlsalvador/simple-uuid/pkg/cli/flag"
	"github.com/jlsalvador/simple-uuid/pkg/common"
)

type Flags struct {
	Format string
	CfgDir cliFlag.StringSlice
}

func parseFlags(args []string) (flags Flags, err error) {
	flagSet := flag.NewFlagSet(CmdName, flag.ContinueOnError)

	flagSet.StringVar(&flags.Format, "format", common.GetEnv(cmd.ENV_PREFIX+"NAMESPACES_FORMAT", "text"), "Output format: text, json or yaml")
	flagSet.Var(&flags.CfgDir, "cfgdir", "Directory with YAML configuration files\nCould be specified multiple times")

	err = flagSet.Parse(args)
	return
}
