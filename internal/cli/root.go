package cli

import (
	"github.com/spf13/cobra"
)

var (
	// 全局参数
	configPath string
	jsonOutput bool
)

// rootCmd examctl 根命令
var rootCmd = &cobra.Command{
	Use:     "examctl",
	Version: "dev",
	Short:   "招聘考试日程运维工具",
	Long: `examctl 供运维与招考人员在命令行查看考生的合并考试日程、导出 Excel、
执行数据库迁移以及签发调试用的访问 Token。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion 设置版本号（由构建时注入）
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml）")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "以 JSON 输出")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
