package service

import (
	"errors"

	"github.com/miatagirl/nhccapp/config"
	"github.com/miatagirl/nhccapp/internal/dto"
	"github.com/miatagirl/nhccapp/internal/i18n"
	"github.com/miatagirl/nhccapp/internal/journey"
	"github.com/miatagirl/nhccapp/internal/model"
)

// ── 外部链接模块业务错误 ──

var (
	ErrStepNotFound   = errors.New("步骤不存在")
	ErrNoExternalLink = errors.New("该步骤没有外部链接")
)

// SiteService 外部链接、站点信息与表单选项（无状态，只读配置）
type SiteService interface {
	ActionLink(stepID model.StepID, lang i18n.Language) (*dto.StepLinkResponse, error)
	SiteInfo(lang i18n.Language) *dto.SiteInfoResponse
	HousingOptions(lang i18n.Language) *dto.HousingOptionsResponse
}

type siteService struct {
	links config.LinksConfig
}

// NewSiteService 创建 SiteService 实例
func NewSiteService(links config.LinksConfig) SiteService {
	return &siteService{links: links}
}

// linkURL 只有申请与 FAFSA 两个步骤跳转外部网站
func linkURL(links config.LinksConfig, id model.StepID) (string, bool) {
	switch id {
	case model.StepApplication:
		return links.ApplicationURL, links.ApplicationURL != ""
	case model.StepFAFSA:
		return links.FAFSAURL, links.FAFSAURL != ""
	}
	return "", false
}

func (s *siteService) ActionLink(stepID model.StepID, lang i18n.Language) (*dto.StepLinkResponse, error) {
	if !stepID.Valid() {
		return nil, ErrStepNotFound
	}
	url, ok := linkURL(s.links, stepID)
	if !ok {
		return nil, ErrNoExternalLink
	}

	// 标签取自国际学生目录（包含全部步骤）
	step, _ := model.FindStep(journey.BuildCatalog(true), stepID)
	return &dto.StepLinkResponse{
		StepID: string(stepID),
		URL:    url,
		Label:  i18n.Translate(lang, step.ActionLabel),
	}, nil
}

func (s *siteService) SiteInfo(lang i18n.Language) *dto.SiteInfoResponse {
	tr := i18n.For(lang)
	return &dto.SiteInfoResponse{
		AdmissionsEmail: s.links.AdmissionsEmail,
		WebsiteURL:      s.links.WebsiteURL,
		ContactText:     tr(i18n.KeyQuestionsContact),
		VisitText:       tr(i18n.KeyVisitUs),
	}
}

// ── 住宿表单选项 ──

var housingTypeKeys = map[model.HousingType][2]i18n.Key{
	model.HousingSingle:    {i18n.KeySingleDorm, i18n.KeySingleDormDesc},
	model.HousingDouble:    {i18n.KeyDoubleDorm, i18n.KeyDoubleDormDesc},
	model.HousingSuite:     {i18n.KeySuiteStyle, i18n.KeySuiteStyleDesc},
	model.HousingOffCampus: {i18n.KeyOffCampus, i18n.KeyOffCampusDesc},
}

var mealPlanKeys = map[model.MealPlan][2]i18n.Key{
	model.MealPlanUnlimited: {i18n.KeyUnlimitedMeal, i18n.KeyUnlimitedMealDesc},
	model.MealPlan19PerWeek: {i18n.KeyMeals19, i18n.KeyMeals19Desc},
	model.MealPlan14PerWeek: {i18n.KeyMeals14, i18n.KeyMeals14Desc},
	model.MealPlan10PerWeek: {i18n.KeyMeals10, i18n.KeyMeals10Desc},
	model.MealPlanCommuter:  {i18n.KeyCommuterPlan, i18n.KeyCommuterPlanDesc},
	model.MealPlanNone:      {i18n.KeyNoMealPlan, i18n.KeyNoMealPlanDesc},
}

func (s *siteService) HousingOptions(lang i18n.Language) *dto.HousingOptionsResponse {
	tr := i18n.For(lang)

	housing := make([]dto.OptionResponse, 0, len(model.HousingTypes))
	for _, h := range model.HousingTypes {
		keys := housingTypeKeys[h]
		housing = append(housing, dto.OptionResponse{Value: string(h), Label: tr(keys[0]), Description: tr(keys[1])})
	}

	meals := make([]dto.OptionResponse, 0, len(model.MealPlans))
	for _, m := range model.MealPlans {
		keys := mealPlanKeys[m]
		meals = append(meals, dto.OptionResponse{Value: string(m), Label: tr(keys[0]), Description: tr(keys[1])})
	}

	return &dto.HousingOptionsResponse{
		HousingTypes: housing,
		MealPlans:    meals,
		LaundryInfo:  tr(i18n.KeyLaundryInfo),
	}
}
