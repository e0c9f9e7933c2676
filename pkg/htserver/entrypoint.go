// HTTP API for expressing durations, timestamps and cron schedules in English
package htserver

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/function61/gokit/httputils"
	"github.com/function61/gokit/logex"
	"github.com/function61/gokit/osutil"
	"github.com/function61/gokit/taskrunner"
	"github.com/spf13/cobra"
)

func Entrypoint() *cobra.Command {
	configPath := "config.json"
	addr := ""

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the HTTP API",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(runServer(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				configPath,
				addr,
				rootLogger))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "", configPath, "Config file (optional)")
	cmd.Flags().StringVarP(&addr, "addr", "", addr, "Address to listen on (overrides config)")

	return cmd
}

func runServer(ctx context.Context, configPath string, addrOverride string, rootLogger *log.Logger) error {
	logl := logex.Levels(logex.Prefix("server", rootLogger))

	conf, err := readConfig(configPath)
	if err != nil {
		return err
	}

	if addrOverride != "" {
		conf.ListenAddr = addrOverride
	}

	listener, err := net.Listen("tcp", conf.ListenAddr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler: newServerHandler(
			conf,
			newMetricsController(),
			time.Now,
			logex.Prefix("api", rootLogger)),
	}

	logl.Info.Printf("listening on %s", listener.Addr().String())

	tasks := taskrunner.New(ctx, rootLogger)

	tasks.Start("listener "+listener.Addr().String(), func(ctx context.Context) error {
		return httputils.RemoveGracefulServerClosedError(srv.Serve(listener))
	})

	tasks.Start("listenershutdowner", httputils.ServerShutdownTask(srv))

	return tasks.Wait()
}
