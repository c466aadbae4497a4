package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"admit-desk/backend/internal/service"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <contact-key>",
	Short: "查看考生的合并考试日程",
	Long:  `按考生联系方式汇总其全部有效申请的考试安排，公共科目只展示一次，并标出时间冲突。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.close()

		svc := service.NewExamScheduleService(e.cfg, e.repo(), e.logger)
		result, err := svc.GetByContactKey(cmd.Context(), args[0])
		if err != nil {
			return describeScheduleError(err)
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}
		renderSchedule(cmd.OutOrStdout(), result)
		return nil
	},
}

// describeScheduleError 将业务错误转换为面向操作者的提示
func describeScheduleError(err error) error {
	switch {
	case errors.Is(err, service.ErrCandidateNotFound):
		return errors.New("考生不存在，请检查联系方式")
	case errors.Is(err, service.ErrNoActiveApplications):
		return errors.New("该考生没有有效的岗位申请")
	case errors.Is(err, service.ErrSharedPaperMismatch):
		return errors.New("考生各申请的公共科目安排不一致，请先修正数据（或关闭 schedule.strict_shared_paper）")
	default:
		return err
	}
}
