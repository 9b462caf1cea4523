// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Branch is an auxiliary reference entity. It is mapped and seeded like the
// other entities but carries no behavior of its own.
type Branch struct {
	BranchID   int64  `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Address    string `json:"address,omitempty"`
}

// TableName returns the name of the database table
// associated with the Branch model.
func (b Branch) TableName() string {
	return "branches"
}
