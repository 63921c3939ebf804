// Package context provides single entry to all resources
package context

import (
	gocontext "context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"

	"github.com/pacfind/pacfind/alpm"
	"github.com/pacfind/pacfind/console"
	"github.com/pacfind/pacfind/database"
	"github.com/pacfind/pacfind/database/goleveldb"
	"github.com/pacfind/pacfind/pacfind"
	"github.com/pacfind/pacfind/utils"
	"github.com/rs/zerolog/log"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

// PacfindContext is a common context shared by all commands
type PacfindContext struct {
	sync.Mutex

	gocontext.Context

	flags, globalFlags *flag.FlagSet
	configLoaded       bool
	configLocation     string

	progress     pacfind.Progress
	database     database.Storage
	pacmanConfig *alpm.PacmanConfig
	registry     *alpm.Registry
}

// FatalError is type for panicking to abort execution with non-zero
// exit code and print meaningful explanation
type FatalError struct {
	ReturnCode int
	Message    string
}

// Fatal panics and aborts execution with exit code 1
func Fatal(err error) {
	returnCode := 1
	if err == commander.ErrFlagError || err == commander.ErrCommandError {
		returnCode = 2
	}
	panic(&FatalError{ReturnCode: returnCode, Message: err.Error()})
}

// FatalCode panics and aborts execution with given exit code
func FatalCode(returnCode int, err error) {
	panic(&FatalError{ReturnCode: returnCode, Message: err.Error()})
}

// Config loads and returns current configuration
func (context *PacfindContext) Config() *utils.ConfigStructure {
	context.Lock()
	defer context.Unlock()

	return context.config()
}

func (context *PacfindContext) config() *utils.ConfigStructure {
	if !context.configLoaded {
		var err error

		configLocation := ""
		if flag := context.globalFlags.Lookup("config"); flag != nil {
			configLocation = flag.Value.String()
		}

		if configLocation != "" {
			err = utils.LoadConfig(configLocation, &utils.Config)
			if err != nil {
				Fatal(err)
			}
			context.configLocation = configLocation
		} else {
			// no config file is fine, defaults match stock pacman installation
			context.configLocation, err = utils.LoadFirstConfig(utils.ConfigLocations(), &utils.Config)
			if err != nil {
				Fatal(err)
			}
		}

		utils.SetupLogger(utils.Config.LogFormat, utils.Config.LogLevel, os.Stderr)
		context.configLoaded = true
	}
	return &utils.Config
}

// ConfigLocation returns name of loaded configuration file, "" when defaults are used
func (context *PacfindContext) ConfigLocation() string {
	context.Lock()
	defer context.Unlock()

	context.config()
	return context.configLocation
}

// LookupOption checks boolean flag with default (usually config) and command-line
// setting
func (context *PacfindContext) LookupOption(defaultValue bool, name string) (result bool) {
	context.Lock()
	defer context.Unlock()

	return context.lookupOption(defaultValue, name)
}

func (context *PacfindContext) lookupOption(defaultValue bool, name string) (result bool) {
	result = defaultValue

	if context.globalFlags.IsSet(name) {
		result = context.globalFlags.Lookup(name).Value.Get().(bool)
	}

	return
}

// lookupString returns global string flag or defaultValue if flag is not set
func (context *PacfindContext) lookupString(defaultValue string, name string) string {
	if context.globalFlags.IsSet(name) {
		return context.globalFlags.Lookup(name).Value.String()
	}
	return defaultValue
}

// Progress creates or returns Progress object
func (context *PacfindContext) Progress() pacfind.Progress {
	context.Lock()
	defer context.Unlock()

	return context._progress()
}

func (context *PacfindContext) _progress() pacfind.Progress {
	if context.progress == nil {
		context.progress = console.NewProgress(os.Stdout, os.Stderr, console.RunningOnTerminal())
		context.progress.Start()
	}

	return context.progress
}

// Reporter returns reporter printing warnings to the console
func (context *PacfindContext) Reporter() pacfind.ResultReporter {
	return &pacfind.ConsoleResultReporter{Progress: context.Progress()}
}

// DBPath returns path to pacman database
func (context *PacfindContext) DBPath() string {
	context.Lock()
	defer context.Unlock()

	return context.dbPath()
}

func (context *PacfindContext) dbPath() string {
	config := *context.config()
	config.RootDir = context.lookupString(config.RootDir, "root")
	config.DBPath = context.lookupString(config.DBPath, "dbpath")

	return config.GetDBPath()
}

// PacmanConfig parses pacman.conf, which lists sync repositories
func (context *PacfindContext) PacmanConfig() (*alpm.PacmanConfig, error) {
	context.Lock()
	defer context.Unlock()

	return context._pacmanConfig()
}

func (context *PacfindContext) _pacmanConfig() (*alpm.PacmanConfig, error) {
	if context.pacmanConfig == nil {
		var err error

		context.pacmanConfig, err = alpm.ParsePacmanConf(context.config().PacmanConfig)
		if err != nil {
			return nil, err
		}
	}

	return context.pacmanConfig, nil
}

// CacheDBPath builds path to the cache database
func (context *PacfindContext) CacheDBPath() string {
	return filepath.Join(context.Config().GetCacheDir(), "db")
}

// Database opens and returns current instance of cache database
func (context *PacfindContext) Database() (database.Storage, error) {
	context.Lock()
	defer context.Unlock()

	return context._database()
}

func (context *PacfindContext) _database() (database.Storage, error) {
	if context.database == nil {
		cacheDir := context.config().GetCacheDir()
		if err := utils.PrepareDir(cacheDir); err != nil {
			return nil, err
		}

		var err error
		context.database, err = goleveldb.NewDB(filepath.Join(cacheDir, "db"))
		if err != nil {
			return nil, fmt.Errorf("can't instantiate database: %s", err)
		}
	}

	if err := context.database.Open(); err != nil {
		return nil, fmt.Errorf("can't open database: %s", err)
	}

	return context.database, nil
}

// CloseDatabase closes the db temporarily
func (context *PacfindContext) CloseDatabase() error {
	context.Lock()
	defer context.Unlock()

	if context.database == nil {
		return nil
	}

	return context.database.Close()
}

// Collection returns sync database cache, nil if caching is disabled or
// cache database can't be opened
func (context *PacfindContext) Collection() *alpm.PackageCollection {
	context.Lock()
	defer context.Unlock()

	return context.collection()
}

func (context *PacfindContext) collection() *alpm.PackageCollection {
	if !context.config().EnableCache || context.lookupOption(false, "no-cache") {
		return nil
	}

	db, err := context._database()
	if err != nil {
		// cache is optional, e.g. another pacfind instance holds the lock
		log.Warn().Err(err).Msg("sync database cache disabled")
		return nil
	}

	return alpm.NewPackageCollection(db)
}

// LoadOptions builds registry load options from command line and configuration
//
// Without -local or -sync local database is loaded.
func (context *PacfindContext) LoadOptions() (alpm.LoadOptions, error) {
	context.Lock()
	defer context.Unlock()

	options := alpm.LoadOptions{
		DBPath: context.dbPath(),
		Local:  context.lookupOption(false, "local"),
		Sync:   context.lookupOption(false, "sync"),
		Files:  utils.SplitList(context.lookupString("", "file")),
	}

	if !options.Local && !options.Sync && len(options.Files) == 0 {
		options.Local = true
	}

	if options.Sync {
		conf, err := context._pacmanConfig()
		if err != nil {
			return options, err
		}
		known := append([]string{alpm.LocalRepository, alpm.FileRepository}, conf.Repos...)
		err = utils.StringsIsSubset(utils.SplitList(context.lookupString("", "repo")), known,
			"unknown repository %s, not listed in "+context.config().PacmanConfig)
		if err != nil {
			return options, err
		}

		options.SyncRepos = conf.Repos
		options.Collection = context.collection()
	}

	return options, nil
}

// Registry loads (once) and returns package registry
func (context *PacfindContext) Registry() (*alpm.Registry, error) {
	options, err := context.LoadOptions()
	if err != nil {
		return nil, err
	}

	progress := context.Progress()
	reporter := context.Reporter()

	context.Lock()
	defer context.Unlock()

	if context.registry == nil {
		context.registry, err = alpm.LoadRegistry(options, progress, reporter)
		if err != nil {
			return nil, err
		}
	}

	return context.registry, nil
}

// Selection builds package selection from global flags
func (context *PacfindContext) Selection() alpm.Selection {
	context.Lock()
	defer context.Unlock()

	return alpm.Selection{
		Explicit:   context.lookupOption(false, "explicit"),
		Deps:       context.lookupOption(false, "deps"),
		Unrequired: context.lookupOption(false, "unrequired"),
		Foreign:    context.lookupOption(false, "foreign"),
		Upgrades:   context.lookupOption(false, "upgrades"),
		Groups:     utils.SplitList(context.lookupString("", "group")),
		Repos:      utils.SplitList(context.lookupString("", "repo")),
	}
}

// UpdateFlags sets internal copy of flags in the context
func (context *PacfindContext) UpdateFlags(flags *flag.FlagSet) {
	context.Lock()
	defer context.Unlock()

	context.flags = flags
}

// Flags returns current command flags
func (context *PacfindContext) Flags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.flags
}

// GlobalFlags returns flags passed to all commands
func (context *PacfindContext) GlobalFlags() *flag.FlagSet {
	context.Lock()
	defer context.Unlock()

	return context.globalFlags
}

// GoContextHandleSignals upgrades context to handle ^C by aborting context
func (context *PacfindContext) GoContextHandleSignals() {
	context.Lock()
	defer context.Unlock()

	// Catch ^C
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	var cancel gocontext.CancelFunc

	context.Context, cancel = gocontext.WithCancel(context.Context)

	go func() {
		<-sigch
		signal.Stop(sigch)
		context.Progress().PrintfStdErr("Aborting... press ^C once again to abort immediately\n")
		cancel()
	}()
}

// Shutdown shuts context down
func (context *PacfindContext) Shutdown() {
	context.Lock()
	defer context.Unlock()

	if context.database != nil {
		context.database.Close()
		context.database = nil
	}
	if context.progress != nil {
		context.progress.Shutdown()
		context.progress = nil
	}
	context.registry = nil
}

// NewContext initializes context with default settings
func NewContext(flags *flag.FlagSet) (*PacfindContext, error) {
	context := &PacfindContext{
		flags:       flags,
		globalFlags: flags,
		Context:     gocontext.TODO(),
	}

	return context, nil
}
