// Command server hosts one board over HTTP.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/memoryscramble/board-engine/applog"
	"github.com/memoryscramble/board-engine/board"
	"github.com/memoryscramble/board-engine/boardsource"
	"github.com/memoryscramble/board-engine/config"
	"github.com/memoryscramble/board-engine/httpapi"
	"github.com/memoryscramble/board-engine/metrics"
)

var (
	appLogger   applog.Logger
	boardEngine *board.Board
	httpRouter  *httpapi.Router
)

func initBoard() {
	src, err := boardsource.Load(config.Envs.BoardSource)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading board source: %v", err))
		os.Exit(1)
	}

	boardEngine, err = board.New(src.Rows, src.Cols, src.Values, board.WithObserver(metrics.NewObserver()))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Constructing board: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Board initialized: %dx%d", src.Rows, src.Cols))
}

func initRouter() {
	watchTimeout := time.Duration(config.Envs.WatchTimeout) * time.Second
	flipTimeout := time.Duration(config.Envs.FlipTimeout) * time.Second

	httpRouter = httpapi.NewRouter(httpapi.Config{
		Addr:    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL: "/api",
		GinMode: config.Envs.GinMode,
		Controllers: []httpapi.Controller{
			httpapi.NewBoardController(boardEngine, watchTimeout, flipTimeout),
		},
	})
	appLogger.Info("Router initialized")
}

func main() {
	applog.SetLevel(config.Envs.LogLevel)
	appLogger = applog.New("APP", os.Stdout)

	initBoard()
	initRouter()

	if err := httpRouter.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
