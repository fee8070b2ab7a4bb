package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/runlet/runlet/pkg/observability"
	"github.com/runlet/runlet/pkg/runtime"
	"github.com/runlet/runlet/pkg/shutdown"
	_ "github.com/runlet/runlet/services/email"
	_ "github.com/runlet/runlet/services/notification"
	_ "github.com/runlet/runlet/services/test"
	"github.com/urfave/cli/v2"
)

func RuntimeCommand() *cli.Command {
	return &cli.Command{
		Name:  "runtime",
		Usage: "Manage the runlet runtime a.k.a. services",
		Subcommands: []*cli.Command{
			runCommand(),
			listCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Load and start every registered service",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "oneshot",
				Usage: "Stop all services and exit immediately after a successful start",
			},
		},
		Action: func(cmd *cli.Context) error {
			gLog := logger.G()

			// Create a shutdown manager. Services must be stopped through it
			// so a signal arriving mid-run still drains every started
			// instance before the process exits.
			shutdownManager := shutdown.NewManager(cmd.Context, gLog)
			shutdownManager.Start()

			// Initialize metrics and tracing (opentelemetry). Disabled
			// sections fall back to noop providers.
			obs, err := observability.Initialize(shutdownManager.Context(), config.G(), gLog)
			if err != nil {
				return errors.Wrap(err, "failure to initialize observability")
			}

			// Construct the global manager. Service factories registered
			// themselves from their package init via the blank imports above
			// ({service}/entrypoint.go), so the registry is already
			// populated at this point.
			manager, mErr := runtime.InitializeManager(shutdownManager.Context(), config.G(), gLog, obs)
			if mErr != nil {
				return errors.Wrap(mErr, "failure to initialize runtime manager")
			}

			gLog.Info("Registered services", "services", runtime.ListAvailableServices())

			if err := manager.LoadServices(); err != nil {
				return errors.Wrap(err, "failure to load runtime services")
			}

			shutdownManager.AddShutdownCallback(manager.StopAll)

			gLog.Info("Starting all services")
			if err := manager.StartAll(); err != nil {
				return errors.Wrap(err, "failure to start runtime services")
			}

			if cmd.Bool("oneshot") {
				gLog.Info("Stopping all services")
				return manager.StopAll()
			}

			// Block until a shutdown signal arrives; the shutdown manager
			// runs StopAll from its callback before Wait returns.
			gLog.Info("All services started, awaiting shutdown signal")
			shutdownManager.Wait()

			gLog.Info("Runtime exited")
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the registered services and their declared dependencies",
		Action: func(cmd *cli.Context) error {
			for _, service := range runtime.ListAvailableServices() {
				reg, ok := runtime.GetFactory(service)
				if !ok {
					continue
				}
				if len(reg.Dependencies) > 0 {
					fmt.Fprintf(cmd.App.Writer, "%s (depends on: %v)\n", service, reg.Dependencies)
					continue
				}
				fmt.Fprintln(cmd.App.Writer, service)
			}
			return nil
		},
	}
}
