// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an engineer account together with its public profile.
//
// Credential fields (PasswordHash, RefreshToken) are tagged json:"-" so that
// they can never be serialised into a response, regardless of which layer
// returns the value.
type User struct {
	// UserID is the UUID assigned at registration.
	UserID string `json:"id"`

	// Username is unique across all users; stored trimmed and lower-cased.
	Username string `json:"username"`

	// Email is unique across all users; stored trimmed and lower-cased.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It never leaves the process.
	PasswordHash string `json:"-"`

	// RefreshToken mirrors the last issued refresh token. Empty after
	// logout or password change.
	RefreshToken string `json:"-"`

	// Avatar and CoverImage are media host URLs, empty when not uploaded.
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage"`

	Skills     StringList  `json:"skills"`
	Experience Experiences `json:"experience"`
	Education  Educations  `json:"education"`
	Projects   Projects    `json:"projects"`

	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"`

	// Resume is the media host URL of the uploaded resume document.
	Resume string `json:"resume"`

	// Followers and Following hold user ids in the order the follow
	// relation was created.
	Followers IDList `json:"followers"`
	Following IDList `json:"following"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public author card embedded into posts.
func (u User) Summary() UserSummary {
	return UserSummary{
		UserID:   u.UserID,
		Username: u.Username,
		FullName: u.FullName,
		Avatar:   u.Avatar,
	}
}

// UserSummary is the reduced user representation attached to posts.
type UserSummary struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// Experience is a single work experience entry of a profile.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   *Date  `json:"startDate,omitempty"`
	EndDate     *Date  `json:"endDate,omitempty"`
	Description string `json:"description"`
}

// Education is a single education entry of a profile.
type Education struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    *Date  `json:"startDate,omitempty"`
	EndDate      *Date  `json:"endDate,omitempty"`
}

// Project is a single project entry of a profile.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    *Date    `json:"startDate,omitempty"`
	EndDate      *Date    `json:"endDate,omitempty"`
}
