package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanban-board-client/internal/dto"
	"kanban-board-client/internal/model"
	"kanban-board-client/internal/store"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks of a column",
}

var (
	taskColumnID        int
	taskNombre          string
	taskDescripcion     string
	taskFechaAsignacion string
	taskFechaLimite     string
	taskAsignador       string
	taskResponsable     string
	taskAvance          int
	taskPrioridad       string
	taskEstado          string
)

func taskStore() *store.TaskStore {
	return store.NewTaskStore(taskColumnID, rootApp.tasks, rootApp.metrics, rootApp.logger)
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of a column",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := taskStore()
		if err := s.Fetch(cmd.Context()); err != nil {
			return err
		}
		printTasks(s.Items())
		return nil
	},
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := taskStore()
		task, err := s.Create(cmd.Context(), dto.CreateTaskRequest{
			Nombre:          taskNombre,
			Descripcion:     taskDescripcion,
			FechaAsignacion: taskFechaAsignacion,
			FechaLimite:     taskFechaLimite,
			Asignador:       taskAsignador,
			Responsable:     taskResponsable,
			Avance:          taskAvance,
			Prioridad:       model.Priority(taskPrioridad),
			Estado:          model.Status(taskEstado),
		})
		if err != nil {
			return err
		}
		printTask(*task)
		return nil
	},
}

var tasksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		var req dto.UpdateTaskRequest
		flags := cmd.Flags()
		if flags.Changed("nombre") {
			req.Nombre = &taskNombre
		}
		if flags.Changed("descripcion") {
			req.Descripcion = &taskDescripcion
		}
		if flags.Changed("fecha-asignacion") {
			req.FechaAsignacion = &taskFechaAsignacion
		}
		if flags.Changed("fecha-limite") {
			req.FechaLimite = &taskFechaLimite
		}
		if flags.Changed("asignador") {
			req.Asignador = &taskAsignador
		}
		if flags.Changed("responsable") {
			req.Responsable = &taskResponsable
		}
		if flags.Changed("avance") {
			req.Avance = &taskAvance
		}
		if flags.Changed("prioridad") {
			p := model.Priority(taskPrioridad)
			req.Prioridad = &p
		}
		if flags.Changed("estado") {
			e := model.Status(taskEstado)
			req.Estado = &e
		}
		s := taskStore()
		task, err := s.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}
		printTask(*task)
		return nil
	},
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := taskStore().Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Tarea %d eliminada\n", id)
		return nil
	},
}

var tasksSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks of a column by name or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := taskStore()
		if err := s.Search(cmd.Context(), args[0]); err != nil {
			return err
		}
		printTasks(s.Items())
		return nil
	},
}

func init() {
	tasksCmd.PersistentFlags().IntVar(&taskColumnID, "column", 0, "column id the tasks belong to")
	_ = tasksCmd.MarkPersistentFlagRequired("column")

	for _, c := range []*cobra.Command{tasksCreateCmd, tasksUpdateCmd} {
		c.Flags().StringVar(&taskNombre, "nombre", "", "task name")
		c.Flags().StringVar(&taskDescripcion, "descripcion", "", "task description")
		c.Flags().StringVar(&taskFechaAsignacion, "fecha-asignacion", "", "assignment date, YYYY-MM-DD")
		c.Flags().StringVar(&taskFechaLimite, "fecha-limite", "", "due date, YYYY-MM-DD")
		c.Flags().StringVar(&taskAsignador, "asignador", "", "who assigned the task")
		c.Flags().StringVar(&taskResponsable, "responsable", "", "who is responsible")
		c.Flags().IntVar(&taskAvance, "avance", 0, "progress percentage, 0 to 100")
		c.Flags().StringVar(&taskPrioridad, "prioridad", "", "priority: alta, media or baja")
		c.Flags().StringVar(&taskEstado, "estado", "", "status: Pendiente, En progreso, Completado or Bloqueado")
	}

	tasksCmd.AddCommand(tasksListCmd, tasksCreateCmd, tasksUpdateCmd, tasksDeleteCmd, tasksSearchCmd)
	rootCmd.AddCommand(tasksCmd)
}

func printTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Println("No hay tareas")
		return
	}
	for _, t := range tasks {
		fmt.Printf("%d\t%s\t%s\t%s\t%d%%\n", t.ID, t.Nombre, t.Prioridad, t.Estado, t.Avance)
	}
}

func printTask(t model.Task) {
	fmt.Printf("ID:          %d\n", t.ID)
	fmt.Printf("Nombre:      %s\n", t.Nombre)
	fmt.Printf("Descripción: %s\n", t.Descripcion)
	fmt.Printf("Columna:     %d\n", t.ColumnID)
	fmt.Printf("Prioridad:   %s\n", t.Prioridad)
	fmt.Printf("Estado:      %s\n", t.Estado)
	fmt.Printf("Avance:      %d%%\n", t.Avance)
	if t.Responsable != "" {
		fmt.Printf("Responsable: %s\n", t.Responsable)
	}
	if t.FechaLimite != "" {
		fmt.Printf("Límite:      %s\n", t.FechaLimite)
	}
}
