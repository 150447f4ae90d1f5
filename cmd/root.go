package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/cursormon/internal/engine"
	"github.com/Norgate-AV/cursormon/internal/focus"
	"github.com/Norgate-AV/cursormon/internal/hotkey"
	"github.com/Norgate-AV/cursormon/internal/logger"
	"github.com/Norgate-AV/cursormon/internal/tray"
	"github.com/Norgate-AV/cursormon/internal/version"
)

// ExecutionContext holds state needed while the hotkey is armed
// and for cleanup in signal handlers.
type ExecutionContext struct {
	log      logger.LoggerInterface
	listener *hotkey.Listener
	done     chan struct{}
	once     sync.Once
	quit     func()    // Ends the tray loop; nil in headless mode
	exitFunc func(int) // Injectable for testing; defaults to os.Exit
}

func newExecutionContext(log logger.LoggerInterface, listener *hotkey.Listener) *ExecutionContext {
	return &ExecutionContext{
		log:      log,
		listener: listener,
		done:     make(chan struct{}),
		exitFunc: os.Exit,
	}
}

// cleanup unregisters the hotkey, removes the tray icon and releases
// anything waiting on done. It is safe to call more than once.
func (ctx *ExecutionContext) cleanup() {
	ctx.once.Do(func() {
		if err := ctx.listener.Stop(); err != nil {
			ctx.log.Warn("Cleanup could not unregister hotkey", slog.Any("error", err))
		}

		if ctx.quit != nil {
			ctx.quit()
		}

		close(ctx.done)
	})
}

const rootLong = `cursormon sits in the notification area and listens for Alt+Shift.
Each press moves the mouse cursor to the center of the next display and
gives keyboard focus to a window on that display.`

// RootCmd is the root command for the cursormon CLI application.
var RootCmd = &cobra.Command{
	Use:          "cursormon",
	Short:        "cursormon - Jump the cursor and keyboard focus to the next display",
	Long:         rootLong,
	Version:      version.GetVersion(),
	Args:         cobra.NoArgs,
	RunE:         Execute,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	addFlags(RootCmd)
	RootCmd.AddCommand(nextCmd, displaysCmd)
}

// addFlags declares the root command's flags
func addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	cmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	cmd.PersistentFlags().StringP("policy", "p", focus.DefaultPolicy.String(),
		fmt.Sprintf("focus policy on the destination display (%s); overrides $%s",
			strings.Join(focus.PolicyNames(), ", "), PolicyEnv))
	cmd.PersistentFlags().Bool("visible-only", false, "ignore hidden windows when picking the topmost window")
	cmd.PersistentFlags().Bool("elevate", false, "relaunch with administrator privileges if not already elevated")
	cmd.Flags().Bool("no-tray", false, "run without a tray icon until Ctrl+C")
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
			return nil
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
		return nil
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger and logs startup information
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// setup is shared by every command: it reads flags, honours --logs and
// opens the log
func setup(cmd *cobra.Command) (*Config, logger.LoggerInterface, error) {
	cfg, err := NewConfigFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return nil, nil, err
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("Starting cursormon",
		slog.String("command", cmd.Name()),
		slog.String("version", version.GetFullVersion()),
	)
	log.Debug("Flags set",
		slog.Bool("verbose", cfg.Verbose),
		slog.String("policy", cfg.Policy.String()),
		slog.Bool("noTray", cfg.NoTray),
		slog.Bool("visibleOnly", cfg.VisibleOnly),
		slog.Bool("elevate", cfg.Elevate),
	)

	return cfg, log, nil
}

// recoverPanic logs a panic with its stack instead of crashing. It must be
// deferred directly.
func recoverPanic(log logger.LoggerInterface) {
	if r := recover(); r != nil {
		log.Error("PANIC RECOVERED",
			slog.Any("panic", r),
			slog.String("stack", string(debug.Stack())),
		)

		fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
		fmt.Fprintf(os.Stderr, "Check log file for details\n")
	}
}

// ensureElevated checks for admin privileges and relaunches if needed
func ensureElevated(log logger.LoggerInterface) error {
	return ensureElevatedWithDeps(log, isElevated, relaunchAsAdmin, os.Exit)
}

// ensureElevatedWithDeps is the testable version with injected dependencies
func ensureElevatedWithDeps(
	log logger.LoggerInterface,
	isElevated func() bool,
	relaunchAsAdmin func() error,
	exitFunc func(int),
) error {
	log.Debug("Checking elevation status")
	if !isElevated() {
		log.Info("Relaunching as administrator so focus can move into elevated windows")

		if err := relaunchAsAdmin(); err != nil {
			log.Error("RelaunchAsAdmin failed", slog.Any("error", err))
			return fmt.Errorf("error relaunching as admin: %w", err)
		}

		// Exit this instance, the elevated one will continue
		log.Debug("Relaunched successfully, exiting non-elevated instance")
		log.Close()
		exitFunc(0)
		return nil
	}

	log.Debug("Running with administrator privileges")
	return nil
}

// newEngine builds the transfer engine on top of the platform desktop
func newEngine(cfg *Config, log logger.LoggerInterface) (*engine.Engine, error) {
	desktop, err := newDesktop(log, cfg)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(desktop, cfg.Policy, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return eng, nil
}

// setupSignalHandlers configures console control and interrupt signal handlers
// It captures the ExecutionContext in closures to access state for cleanup
func setupSignalHandlers(ctx *ExecutionContext) {
	setupConsoleHandler(ctx)

	// Set up signal handler for Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		ctx.log.Debug("Received signal", slog.Any("signal", sig))
		ctx.log.Info("Interrupt signal received, unregistering hotkey")

		ctx.cleanup()

		ctx.log.Debug("Cleanup completed, exiting")
		ctx.exitFunc(130)
	}()
}

// runHeadless arms the hotkey and blocks until cleanup is requested
func runHeadless(ctx *ExecutionContext) error {
	if err := ctx.listener.Start(); err != nil {
		ctx.log.Error("Failed to register hotkey", slog.Any("error", err))
		return err
	}

	ctx.log.Info("Listening, press Alt+Shift to jump to the next display or Ctrl+C to exit")

	<-ctx.done
	return nil
}

// runTray shows the tray icon and blocks until Exit is selected
func runTray(ctx *ExecutionContext) {
	ctrl := tray.NewController(ctx.listener, newNotifier(ctx.log), ctx.log, tray.ControllerOptions{
		Elevated: isElevated(),
	})

	tray.Run(ctrl, ctx.log)
	ctx.cleanup()
}

// Execute runs the provided command with the given arguments.
func Execute(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	defer log.Close()

	// Recover from panics and log them
	defer recoverPanic(log)

	if cfg.Elevate {
		if err := ensureElevated(log); err != nil {
			return err
		}
	}

	eng, err := newEngine(cfg, log)
	if err != nil {
		log.Error("Startup failed", slog.Any("error", err))
		return err
	}

	listener := hotkey.NewListener(func() { eng.Trigger() }, log)

	// Create execution context to hold state for signal handlers
	ctx := newExecutionContext(log, listener)
	defer ctx.cleanup()

	if !cfg.NoTray {
		ctx.quit = tray.Quit
	}

	setupSignalHandlers(ctx)

	log.Info("cursormon started",
		slog.String("policy", eng.Policy().String()),
		slog.String("log", log.GetLogPath()),
	)

	if cfg.NoTray {
		return runHeadless(ctx)
	}

	runTray(ctx)
	return nil
}
