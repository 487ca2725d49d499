package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kanban-board-client/internal/job"
	"kanban-board-client/internal/store"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically refresh the board list and print changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		if msg := s.Err(); msg != "" {
			rootApp.logger.Warn("initial fetch failed", zap.String("error", msg))
		}
		printBoards(s.Items())

		j := job.NewRefreshJob(s, rootApp.logger)
		j.Start(watchInterval)
		defer j.Stop()

		fmt.Fprintf(os.Stderr, "Actualizando cada %s, Ctrl+C para salir\n", watchInterval)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "refresh interval")
	rootCmd.AddCommand(watchCmd)
}
