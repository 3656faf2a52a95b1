package cmd

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joshyorko/scriptboard/catalog"
	"github.com/joshyorko/scriptboard/common"
	"github.com/joshyorko/scriptboard/dashboard"
	"github.com/joshyorko/scriptboard/interactive"
	"github.com/joshyorko/scriptboard/launcher"
	"github.com/joshyorko/scriptboard/pretty"
	"github.com/joshyorko/scriptboard/settings"
	"github.com/joshyorko/scriptboard/wizard"
	"github.com/joshyorko/scriptboard/xviper"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	rootFlag    string
	pythonFlag  string
	launchFlag  string
	pagerFlag   bool
	silentFlag  bool
	debugFlag   bool
	traceFlag   bool
	profiles    *settings.Settings
	findProgram = exec.LookPath
	flagsForKey = map[string]string{
		"root":        "root",
		"interpreter": "python",
		"launch.mode": "launch",
		"view.pager":  "pager",
	}
)

var rootCmd = &cobra.Command{
	Use:   "scriptboard [root]",
	Short: "Browse units, subfolders and Python scripts, view them and run them.",
	Long: `scriptboard is a menu driven dashboard for a folder of Python exercises
laid out as <root>/<unit>/<subfolder>/*.py.

Pick a unit, then a subfolder, then a script to see its code. After reading
the code you can run it with the configured Python interpreter, either in a
new terminal window or inline in this console.

The root folder is the first argument, --root, "root" in the configuration
file, or SCRIPTBOARD_ROOT. Without any of those it is the folder where the
scriptboard executable lives.`,
	Args:             cobra.MaximumNArgs(1),
	PersistentPreRun: setupEnvironment,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Dashboard session lasted").Report()
		}
		config := dashboard.Config{
			Root:        resolveRoot(args),
			Interpreter: resolveInterpreter(),
		}
		launch, err := launcher.Detect(launcher.DefaultHost(), profiles, xviper.GetString("launch.mode"))
		pretty.Guard(err == nil, 1, "Launch mode: %v", err)
		common.Debug("Scripts will be launched with strategy: %s", launch.Name())

		menu := wizard.NewMenu(os.Stdin, os.Stdout)
		viewer := dashboard.Printer(menu)
		if xviper.GetBool("view.pager") {
			viewer = interactive.NewPager(viewer)
		}
		err = dashboard.New(config, catalog.Filesystem(), menu, launch, dashboard.WithViewer(viewer)).Run(cmd.Context())
		pretty.Guard(err == nil, 2, "Dashboard stopped: %v", err)
	},
}

func setupEnvironment(cmd *cobra.Command, args []string) {
	common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
	pretty.Setup()

	if len(configFile) == 0 {
		configFile = common.Product.ConfigFile()
	}
	err := xviper.Setup(configFile)
	pretty.Guard(err == nil, 1, "%v", err)
	xviper.SetDefault("launch.mode", launcher.ModeAuto)
	flags := cmd.Root().PersistentFlags()
	for key, name := range flagsForKey {
		err = xviper.BindFlag(key, flags.Lookup(name))
		pretty.Guard(err == nil, 1, "Binding flag --%s: %v", name, err)
	}

	profiles, err = settings.SummonSettings()
	pretty.Guard(err == nil, 1, "%v", err)
}

func executableFolder() string {
	location, err := os.Executable()
	if err != nil {
		common.Uncritical("locating executable", err)
		return "."
	}
	resolved, err := filepath.EvalSymlinks(location)
	if err == nil {
		location = resolved
	}
	return filepath.Dir(location)
}

// absolute leaves user given paths as they are, apart from making them
// absolute; the shell has already expanded them.
func absolute(path string) string {
	result, err := filepath.Abs(path)
	if err != nil {
		common.Uncritical("resolving root", err)
		return path
	}
	return result
}

func resolveRoot(args []string) string {
	root := xviper.GetString("root")
	if len(args) > 0 {
		root = args[0]
	}
	if len(root) == 0 {
		return executableFolder()
	}
	return absolute(root)
}

// resolveInterpreter never fails; without a Python the menus still work and
// launching reports the problem.
func resolveInterpreter() string {
	candidates := profiles.InterpreterCandidates()
	interpreter, err := launcher.ResolveInterpreter(xviper.GetString("interpreter"), candidates, findProgram)
	if err == nil {
		return interpreter
	}
	pretty.Warning("%v", err)
	if explicit := xviper.GetString("interpreter"); len(explicit) > 0 {
		return explicit
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return "python3"
}

func Execute() {
	err := rootCmd.Execute()
	pretty.Guard(err == nil, 1, "%v", err)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Configuration file. (default: scriptboard.yaml in $SCRIPTBOARD_HOME)")
	flags.StringVarP(&rootFlag, "root", "r", "", "Folder that contains the units.")
	flags.StringVarP(&pythonFlag, "python", "p", "", "Python interpreter used to run scripts.")
	flags.StringVarP(&launchFlag, "launch", "l", launcher.ModeAuto, "How to run scripts: auto, terminal or inline.")
	flags.BoolVar(&pagerFlag, "pager", false, "Show long scripts in a full screen pager.")
	flags.BoolVar(&silentFlag, "silent", false, "Be less verbose on output.")
	flags.BoolVar(&debugFlag, "debug", false, "Show debug output.")
	flags.BoolVar(&traceFlag, "trace", false, "Show trace output.")
}
