package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	"weppcloud.dev/pkg/wepprunner/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "wepprunner"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	runParallelFlagName   = "parallel"
	strictFlagName        = "strict"
	journalDirFlagName    = "journal-dir"
	dryRunFlagName        = "dry-run"
	binaryFlagName        = "bin"
	binDirFlagName        = "bin-dir"
	requireMarkerFlagName = "require-marker"
	statusURLFlagName     = "status-url"
	statusChannelFlagName = "status-channel"
	logFileFlagName       = "log-file"
	verboseFlagName       = "verbose"

	binaryConfigKey           = "simulator.bin"
	binDirConfigKey           = "simulator.bin_dir"
	requireMarkerConfigKey    = "simulator.require_marker"
	cleanupFlowpathsConfigKey = "simulator.cleanup_flowpaths"
	runParallelConfigKey      = "run.parallel"
	strictConfigKey           = "run.strict"
	journalDirConfigKey       = "run.journal_dir"
	statusURLConfigKey        = "status.url"
	statusChannelConfigKey    = "status.channel"

	defaultBinary           = "latest"
	defaultBinDir           = "bin"
	defaultRequireMarker    = true
	defaultCleanupFlowpaths = true
	defaultRunParallel      = 1
	defaultStrict           = false
	defaultJournalDir       = ".wepprunner-journal"
	defaultStatusURL        = ""
	defaultStatusChannel    = "wepprunner"

	envPrefix = "WEPPRUNNER"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".wepprunner.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be read. It is
// logged once the logger is configured.
var configReadErr error

var configDefaults = map[string]any{
	configVersionKey:          currentConfigVersion,
	binaryConfigKey:           defaultBinary,
	binDirConfigKey:           defaultBinDir,
	requireMarkerConfigKey:    defaultRequireMarker,
	cleanupFlowpathsConfigKey: defaultCleanupFlowpaths,
	runParallelConfigKey:      defaultRunParallel,
	strictConfigKey:           defaultStrict,
	journalDirConfigKey:       defaultJournalDir,
	statusURLConfigKey:        defaultStatusURL,
	statusChannelConfigKey:    defaultStatusChannel,
	logFilenameKey:            defaultLogFilename,
	logLevelKey:               defaultLogLevel,
	logVerboseKey:             defaultLogVerbose,
	logMaxSizeKey:             defaultLogMaxSize,
	logMaxBackupsKey:          defaultLogMaxBackups,
	logMaxAgeKey:              defaultLogMaxAge,
	logCompressKey:            defaultLogCompress,
}

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	for key, value := range configDefaults {
		viper.SetDefault(key, value)
	}

	configReadErr = readConfig()
}

// readConfig loads wepprunner.yaml. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}

// parseSlogLevel accepts slog level names ("debug", "INFO+2"), "warning" and
// numeric levels. Anything else yields defaultLevel.
func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultLevel
	}

	if strings.EqualFold(value, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		return level
	}

	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the default slog logger at a rotating log file.
// verbose forces debug level, otherwise log.level applies.
func configureLogger(logPath string, verbose bool) {
	logPath = strings.TrimSpace(logPath)
	if logPath == "" {
		logPath = defaultLogFilename
	}

	level := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	if configReadErr != nil {
		slog.Warn("Ignoring unreadable config file", "error", configReadErr)
	}
}

// executorOptions translates the simulator settings into executor options.
func executorOptions(publisher adapter.StatusPublisher, requireMarker, cleanupFlowpaths bool) []domain.ExecutorOption {
	opts := []domain.ExecutorOption{domain.WithStatusPublisher(publisher)}

	if requireMarker {
		opts = append(opts, domain.WithCompletionMarker())
	}

	if cleanupFlowpaths {
		opts = append(opts, domain.WithFlowpathCleanup())
	}

	return opts
}

// checkParallelism rejects a run.parallel below one.
func checkParallelism(parallel int) (int, error) {
	if parallel < 1 {
		return 0, fmt.Errorf("%s must be at least 1, got %d", runParallelConfigKey, parallel)
	}

	return parallel, nil
}
