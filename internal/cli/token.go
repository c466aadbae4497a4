package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"admit-desk/backend/pkg/jwt"
)

var (
	tokenSubject     string
	tokenRole        string
	tokenCandidateID string
)

// tokenCmd 签发调试用访问 Token（生产环境由统一认证平台签发）
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "签发调试用访问 Token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch tokenRole {
		case jwt.RoleAdmin:
		case jwt.RoleCandidate:
			if tokenCandidateID == "" {
				return fmt.Errorf("考生 Token 需要 --candidate-id")
			}
		default:
			return fmt.Errorf("不支持的角色: %s（可选 %s、%s）", tokenRole, jwt.RoleAdmin, jwt.RoleCandidate)
		}

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := jwt.NewManager(&cfg.Auth).GenerateAccessToken(tokenSubject, tokenRole, tokenCandidateID)
		if err != nil {
			return fmt.Errorf("签发 Token 失败: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "examctl", "Token subject（操作人ID）")
	tokenCmd.Flags().StringVar(&tokenRole, "role", jwt.RoleAdmin, "角色：admin 或 candidate")
	tokenCmd.Flags().StringVar(&tokenCandidateID, "candidate-id", "", "考生ID（candidate 角色必填）")
}
