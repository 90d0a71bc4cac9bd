package libdiff

const (
	DeleteFormat = "[-%s-]"
	InsertFormat = "{+%s+}"
)
