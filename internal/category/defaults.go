package category

// Defaults are the categories suggested before anything has been recorded.
var Defaults = []string{"food", "transportation", "entertainment", "other"}
