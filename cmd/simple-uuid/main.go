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

package main

import (
	"os"

	"github.com/jlsalvador/simple-uuid/internal/cmd"
	"github.com/jlsalvador/simple-uuid/internal/cmd/inspect"
	"github.com/jlsalvador/simple-uuid/internal/cmd/mint"
	"github.com/jlsalvador/simple-uuid/internal/cmd/namespaces"
	"github.com/jlsalvador/simple-uuid/internal/cmd/version"
	"github.com/jlsalvador/simple-uuid/pkg/common"
	"github.com/jlsalvador/simple-uuid/pkg/log"
)

var commands = []cmd.Command{
	{Name: mint.CmdName, Help: mint.CmdHelp, Fn: mint.CmdFn},
	{Name: inspect.CmdName, Help: inspect.CmdHelp, Fn: inspect.CmdFn},
	{Name: namespaces.CmdName, Help: namespaces.CmdHelp, Fn: namespaces.CmdFn},
	{Name: version.CmdName, Help: version.CmdHelp, Fn: version.CmdFn},
}

func main() {
	log.DefaultLevel = common.GetEnv(cmd.ENV_PREFIX+"LOG_LEVEL", log.LevelInfo)
	log.DefaultPrettyPrint = common.GetBool(common.GetEnv(cmd.ENV_PREFIX+"LOG_PRETTY", "false"))

	if err := cmd.Dispatch(os.Args[1:], os.Stdout, commands); err != nil {
		log.Error("process.args", os.Args[1:]).Err(err).Print()
		os.Exit(1)
	}
}
