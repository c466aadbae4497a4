package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"admit-desk/backend/internal/service"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <contact-key>",
	Short: "导出考生考试日程为 Excel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		svc := service.NewExportService(e.cfg, e.repo(), e.logger)
		buf, filename, err := svc.ExportExamSchedule(cmd.Context(), args[0])
		if err != nil {
			return describeScheduleError(err)
		}

		path := exportOutput
		if path == "" {
			path = filename
		} else if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			path = filepath.Join(path, filename)
		}

		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("写入文件失败: %w", err)
		}
		_, _ = successColor.Fprintf(cmd.OutOrStdout(), "✓ 已导出到 %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "输出文件或目录（默认当前目录下的 考试安排_<姓名>.xlsx）")
}
