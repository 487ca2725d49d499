package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
	"kanban-board-client/internal/store"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "Manage boards",
}

var boardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		if msg := s.Err(); msg != "" {
			return errors.New(msg)
		}
		printBoards(s.Items())
		return nil
	},
}

var boardsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		board, err := rootApp.boards.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		printBoard(*board)
		return nil
	},
}

var (
	boardNombre      string
	boardDescripcion string
)

var boardsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		board, err := s.Create(cmd.Context(), dto.CreateBoardRequest{
			Nombre:      boardNombre,
			Descripcion: boardDescripcion,
		})
		if err != nil {
			return err
		}
		printBoard(*board)
		return nil
	},
}

var boardsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var req dto.UpdateBoardRequest
		if cmd.Flags().Changed("nombre") {
			req.Nombre = &boardNombre
		}
		if cmd.Flags().Changed("descripcion") {
			req.Descripcion = &boardDescripcion
		}
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		board, err := s.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		printBoard(*board)
		return nil
	},
}

var boardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		if err := s.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Tablero %d eliminado\n", id)
		return nil
	},
}

var boardsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search boards by name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.NewBoardStore(cmd.Context(), rootApp.boards, rootApp.metrics, rootApp.logger)
		if err := s.Search(cmd.Context(), args[0]); err != nil {
			return err
		}
		printBoards(s.Items())
		return nil
	},
}

var boardsStatsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show aggregate statistics for a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stats, err := rootApp.boards.Stats(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Columnas:    %d\n", stats.TotalColumns)
		fmt.Printf("Tareas:      %d\n", stats.TotalTasks)
		fmt.Printf("Completadas: %d\n", stats.CompletedTasks)
		fmt.Printf("Pendientes:  %d\n", stats.PendingTasks)
		fmt.Printf("Avance:      %d%%\n", stats.CompletionPercentage)
		return nil
	},
}

func init() {
	boardsCreateCmd.Flags().StringVar(&boardNombre, "nombre", "", "board name")
	boardsCreateCmd.Flags().StringVar(&boardDescripcion, "descripcion", "", "board description")

	boardsUpdateCmd.Flags().StringVar(&boardNombre, "nombre", "", "board name")
	boardsUpdateCmd.Flags().StringVar(&boardDescripcion, "descripcion", "", "board description")

	boardsCmd.AddCommand(boardsListCmd, boardsGetCmd, boardsCreateCmd, boardsUpdateCmd, boardsDeleteCmd, boardsSearchCmd, boardsStatsCmd)
	rootCmd.AddCommand(boardsCmd)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func printBoards(boards []model.Board) {
	if len(boards) == 0 {
		fmt.Println("No hay tableros")
		return
	}
	for _, b := range boards {
		fmt.Printf("%d\t%s\t%s\n", b.ID, b.Nombre, b.Descripcion)
	}
}

func printBoard(b model.Board) {
	fmt.Printf("ID:          %d\n", b.ID)
	fmt.Printf("Nombre:      %s\n", b.Nombre)
	fmt.Printf("Descripción: %s\n", b.Descripcion)
	fmt.Printf("Columnas:    %d\n", len(b.Columns))
}
