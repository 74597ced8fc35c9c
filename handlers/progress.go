// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quorion/models"
	"github.com/danielhkuo/quorion/pages"
)

// RewardUnavailable is shown instead of a reward when required elements is zero
const RewardUnavailable = "—"

// ComputeProjectStats derives the display metrics for a project.
// Zero denominators give 0% and RewardUnavailable instead of non-finite numbers.
func ComputeProjectStats(p models.Project) models.ProjectStats {
	reward, ok := rewardPerSubmission(p.TotalPrizePool, p.RequiredElements)

	return models.ProjectStats{
		ProgressPercentage:    Percentage(float64(p.CollectedElements), float64(p.RequiredElements)),
		DistributedPercentage: Percentage(p.DistributedPrizePool, p.TotalPrizePool),
		RewardPerSubmission:   reward,
		RewardAvailable:       ok,
		CollectedText:         humanize.Comma(p.CollectedElements),
		RequiredText:          humanize.Comma(p.RequiredElements),
		DistributedText:       formatAmount(p.DistributedPrizePool),
		TotalText:             formatAmount(p.TotalPrizePool),
		TeamSummary:           TeamSummary(p),
	}
}

// MaxPercentage caps percentages so the int conversion stays in range
const MaxPercentage = math.MaxInt32

// Percentage returns round(part / whole * 100) within [0, MaxPercentage],
// or 0 when whole is not positive
func Percentage(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	v := math.Round(part / whole * 100)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v >= MaxPercentage {
		return MaxPercentage
	}
	return int(v)
}

// TeamSummary reads "<N> Admins, <M> Validators"
func TeamSummary(p models.Project) string {
	return fmt.Sprintf("%d Admins, %d Validators", len(p.AdminAddresses), len(p.ValidatorAddresses))
}

func rewardPerSubmission(total float64, required int64) (string, bool) {
	if required <= 0 {
		return RewardUnavailable, false
	}
	v := total / float64(required)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return RewardUnavailable, false
	}
	return fmt.Sprintf("%.2f", v), true
}

// formatAmount adds thousands separators and keeps at most three decimals
func formatAmount(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}

func barWidth(percentage int) int {
	return min(max(percentage, 0), 100)
}

// buildProjectView resolves fallbacks and links for the detail template
func buildProjectView(p models.Project, stats models.ProjectStats) pages.ProjectView {
	description := "No description provided."
	if p.Description != nil && *p.Description != "" {
		description = *p.Description
	}

	imageURL := models.PlaceholderImageURL
	if p.ImageURL != nil && strings.TrimSpace(*p.ImageURL) != "" {
		imageURL = *p.ImageURL
	}

	projectPath := "/project/" + url.PathEscape(p.ID)

	return pages.ProjectView{
		ID:                    p.ID,
		Name:                  p.Name,
		OrganizationName:      p.OrganizationName,
		Description:           description,
		ImageURL:              imageURL,
		DataTypes:             p.DataTypes,
		TeamSummary:           stats.TeamSummary,
		ProgressPercentage:    stats.ProgressPercentage,
		ProgressBarWidth:      barWidth(stats.ProgressPercentage),
		CollectedText:         stats.CollectedText,
		RequiredText:          stats.RequiredText,
		DistributedPercentage: stats.DistributedPercentage,
		DistributedBarWidth:   barWidth(stats.DistributedPercentage),
		DistributedText:       stats.DistributedText,
		TotalText:             stats.TotalText,
		RewardAvailable:       stats.RewardAvailable,
		RewardPerSubmission:   stats.RewardPerSubmission,
		ContributeURL:         projectPath + "/contribute",
		ValidatorURL:          projectPath + "/validator",
		ContactEmail:          p.ContactEmail,
		MailtoURL:             "mailto:" + p.ContactEmail,
	}
}
