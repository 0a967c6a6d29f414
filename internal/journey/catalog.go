// Package journey 申请进度状态模型：步骤目录、进度聚合、成就判定、
// 步骤切换与表单提交校验。全部为纯内存、同步操作，不做任何 I/O。
package journey

import (
	"github.com/miatagirl/nhccapp/internal/i18n"
	"github.com/miatagirl/nhccapp/internal/model"
)

// 各步骤积分（目录构建时固定）
const (
	PointsApplication = 100
	PointsFAFSA       = 75
	PointsHousing     = 50
	PointsI20         = 75
)

// BuildCatalog 根据学生类型构建有序步骤列表。
// 固定返回 application、fafsa、housing；国际学生追加可选的 i20 作为第 4 项。
// 所有步骤初始均未完成。
func BuildCatalog(isInternational bool) []model.ApplicationStep {
	steps := []model.ApplicationStep{
		{
			ID:          model.StepApplication,
			Title:       i18n.KeySubmitApplication,
			Description: i18n.KeySubmitApplicationDesc,
			ActionLabel: i18n.KeyStartApplication,
			Points:      PointsApplication,
			Requirements: []i18n.Key{
				i18n.KeyPersonalInfo,
				i18n.KeyAcademicHistory,
				i18n.KeyEssayStatement,
				i18n.KeyApplicationFee,
			},
		},
		{
			ID:          model.StepFAFSA,
			Title:       i18n.KeyCompleteFAFSA,
			Description: i18n.KeyCompleteFAFSADesc,
			ActionLabel: i18n.KeyCompleteFAFSABtn,
			Points:      PointsFAFSA,
			Requirements: []i18n.Key{
				i18n.KeySocialSecurity,
				i18n.KeyTaxReturns,
				i18n.KeyBankStatements,
				i18n.KeyFsaID,
			},
		},
		{
			ID:          model.StepHousing,
			Title:       i18n.KeyHousingApplication,
			Description: i18n.KeyHousingApplicationDesc,
			ActionLabel: i18n.KeySelectHousingOptions,
			Points:      PointsHousing,
			Requirements: []i18n.Key{
				i18n.KeyHousingForm,
				i18n.KeyHousingDeposit,
				i18n.KeyRoommatePrefs,
				i18n.KeyMealPlanSelection,
			},
		},
	}

	if isInternational {
		steps = append(steps, model.ApplicationStep{
			ID:          model.StepI20,
			Title:       i18n.KeyI20FormRequest,
			Description: i18n.KeyI20FormRequestDesc,
			ActionLabel: i18n.KeyRequestI20Form,
			Optional:    true,
			Points:      PointsI20,
			Requirements: []i18n.Key{
				i18n.KeyFinancialProof,
				i18n.KeyBankStatementsSponsors,
				i18n.KeyPassportCopy,
				i18n.KeySevisFee,
			},
		})
	}

	return steps
}
