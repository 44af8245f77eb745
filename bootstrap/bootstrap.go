package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fulldump/box"

	"github.com/fulldump/crossbench/api"
	"github.com/fulldump/crossbench/configuration"
	"github.com/fulldump/crossbench/service"
)

var VERSION = "dev"

// Bootstrap builds the HTTP API around s and binds c.HttpAddr, returning the
// bound address. start blocks serving until stop is called or SIGINT/SIGTERM
// arrives.
func Bootstrap(c *configuration.Configuration, s service.Servicer, logger *log.Logger) (start, stop func(), addr string, err error) {

	b := api.Build(s, VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(logger.With("component", "access").StandardLog()),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, "", err
	}
	addr = ln.Addr().String()
	logger.Info("listening", "addr", addr)

	done := make(chan struct{})
	stopOnce := &sync.Once{}
	shutdown := func() {
		stopOnce.Do(func() {
			close(done)
			server.Shutdown(context.Background())
			ln.Close()
		})
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		defer signal.Stop(signalChan)
		select {
		case sig := <-signalChan:
			logger.Info("signal received", "signal", sig.String())
			shutdown()
		case <-done:
		}
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve", "err", err)
		}
	}

	stop = func() {
		shutdown()
		<-watching
	}

	return start, stop, addr, nil
}
