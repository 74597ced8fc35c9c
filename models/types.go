package models

// PlaceholderImageURL is used when a project has no cover image.
const PlaceholderImageURL = "/placeholder.svg?height=800&width=1200"

// Domain types

type Project struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	OrganizationName     string   `json:"organization_name" yaml:"organization_name"`
	Description          *string  `json:"description,omitempty" yaml:"description"`
	ImageURL             *string  `json:"image_url,omitempty" yaml:"image_url"`
	DataTypes            []string `json:"data_types" yaml:"data_types"`
	AdminAddresses       []string `json:"admin_addresses" yaml:"admin_addresses"`
	ValidatorAddresses   []string `json:"validator_addresses" yaml:"validator_addresses"`
	CollectedElements    int64    `json:"collected_elements" yaml:"collected_elements"`
	RequiredElements     int64    `json:"required_elements" yaml:"required_elements"`
	DistributedPrizePool float64  `json:"distributed_prize_pool" yaml:"distributed_prize_pool"`
	TotalPrizePool       float64  `json:"total_prize_pool" yaml:"total_prize_pool"`
	ContactEmail         string   `json:"contact_email" yaml:"contact_email"`
}

// Derived display metrics

type ProjectStats struct {
	ProgressPercentage    int    `json:"progress_percentage"`
	DistributedPercentage int    `json:"distributed_percentage"`
	RewardPerSubmission   string `json:"reward_per_submission"`
	CollectedText         string `json:"collected_text"`
	RequiredText          string `json:"required_text"`
	DistributedText       string `json:"distributed_text"`
	TotalText             string `json:"total_text"`
	TeamSummary           string `json:"team_summary"`
	RewardAvailable       bool   `json:"reward_available"`
}

// Response types

type ProjectDetail struct {
	Project Project      `json:"project"`
	Stats   ProjectStats `json:"stats"`
}

type ProjectSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	OrganizationName   string `json:"organization_name"`
	ProgressPercentage int    `json:"progress_percentage"`
}

type ProjectListResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
