package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
	"kanban-board-client/internal/store"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Manage columns of a board",
}

var (
	columnBoardID  int
	columnTitulo   string
	columnColor    string
	columnPosicion int
)

func columnStore() *store.ColumnStore {
	return store.NewColumnStore(columnBoardID, rootApp.columns, rootApp.metrics, rootApp.logger)
}

var columnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the columns of a board",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := columnStore()
		if err := s.Fetch(cmd.Context()); err != nil {
			return err
		}
		printColumns(s.Items())
		return nil
	},
}

var columnsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a column",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := columnStore()
		column, err := s.Create(cmd.Context(), dto.CreateColumnRequest{
			Titulo:   columnTitulo,
			Color:    columnColor,
			Posicion: columnPosicion,
		})
		if err != nil {
			return err
		}
		printColumn(*column)
		return nil
	},
}

var columnsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var req dto.UpdateColumnRequest
		if cmd.Flags().Changed("titulo") {
			req.Titulo = &columnTitulo
		}
		if cmd.Flags().Changed("color") {
			req.Color = &columnColor
		}
		if cmd.Flags().Changed("posicion") {
			req.Posicion = &columnPosicion
		}
		s := columnStore()
		column, err := s.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		printColumn(*column)
		return nil
	},
}

var columnsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := columnStore().Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Columna %d eliminada\n", id)
		return nil
	},
}

var columnsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search columns of a board by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := columnStore()
		if err := s.Search(cmd.Context(), args[0]); err != nil {
			return err
		}
		if msg := s.Err(); msg != "" {
			return errors.New(msg)
		}
		printColumns(s.Items())
		return nil
	},
}

func init() {
	columnsCmd.PersistentFlags().IntVar(&columnBoardID, "board", 0, "board id the columns belong to")
	_ = columnsCmd.MarkPersistentFlagRequired("board")

	columnsCreateCmd.Flags().StringVar(&columnTitulo, "titulo", "", "column title")
	columnsCreateCmd.Flags().StringVar(&columnColor, "color", "", "column color, hex")
	columnsCreateCmd.Flags().IntVar(&columnPosicion, "posicion", 0, "column position")

	columnsUpdateCmd.Flags().StringVar(&columnTitulo, "titulo", "", "column title")
	columnsUpdateCmd.Flags().StringVar(&columnColor, "color", "", "column color, hex")
	columnsUpdateCmd.Flags().IntVar(&columnPosicion, "posicion", 0, "column position")

	columnsCmd.AddCommand(columnsListCmd, columnsCreateCmd, columnsUpdateCmd, columnsDeleteCmd, columnsSearchCmd)
	rootCmd.AddCommand(columnsCmd)
}

func printColumns(columns []model.Column) {
	if len(columns) == 0 {
		fmt.Println("No hay columnas")
		return
	}
	for _, c := range columns {
		fmt.Printf("%d\t%s\t%s\tpos=%d\ttareas=%d\n", c.ID, c.Titulo, c.Color, c.Posicion, len(c.Tasks))
	}
}

func printColumn(c model.Column) {
	fmt.Printf("ID:       %d\n", c.ID)
	fmt.Printf("Título:   %s\n", c.Titulo)
	fmt.Printf("Color:    %s\n", c.Color)
	fmt.Printf("Posición: %d\n", c.Posicion)
	fmt.Printf("Tablero:  %d\n", c.BoardID)
}
