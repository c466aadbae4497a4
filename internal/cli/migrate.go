package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"admit-desk/backend/pkg/database"
)

var migrateSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "数据库迁移",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "执行全部未应用的迁移",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		sqlDB, err := e.sqlDB()
		if err != nil {
			return err
		}
		if err := database.RunMigrations(sqlDB, e.logger); err != nil {
			return err
		}
		_, _ = successColor.Fprintln(cmd.OutOrStdout(), "✓ 数据库迁移完成")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "回滚最近的迁移",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateSteps <= 0 {
			return fmt.Errorf("--steps 必须为正整数")
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		sqlDB, err := e.sqlDB()
		if err != nil {
			return err
		}
		if err := database.RollbackMigrations(sqlDB, migrateSteps, e.logger); err != nil {
			return err
		}
		_, _ = successColor.Fprintf(cmd.OutOrStdout(), "✓ 已回滚 %d 步迁移\n", migrateSteps)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&migrateSteps, "steps", 1, "回滚步数")
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
