package vstovsc

import (
	"github.com/1llum1n4t1s/VStoVSC/app"
	"github.com/1llum1n4t1s/VStoVSC/internal/base"
	"github.com/1llum1n4t1s/VStoVSC/internal/cmd"
	"github.com/1llum1n4t1s/VStoVSC/utils"
)

var LogVStoVSC = base.NewLogCategory("VStoVSC")

/***************************************
 * Launch Command (program entry point)
 ***************************************/

func LaunchCommand(args []string) error {
	return app.WithCommandEnv(args, func(args base.StringSet) error {
		cmd.InitCmd()
		return utils.RunCommandLine(args)
	})
}
