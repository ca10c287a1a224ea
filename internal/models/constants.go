package models

// Transaction directions
const (
	DirectionDebit  = "Debit"
	DirectionCredit = "Credit"
)

// CategoryUncategorized is the default label for transactions matching no
// keyword rule. It always exists in the rule set and never carries keywords.
const CategoryUncategorized = "Uncategorized"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDataFile   = 0644
	PermissionDirectory  = 0750
)
