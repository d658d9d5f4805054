package unity

// BuiltinTags are the tags every Unity project carries regardless of its
// TagManager contents.
var BuiltinTags = []string{
	"Untagged",
	"Respawn",
	"Finish",
	"EditorOnly",
	"MainCamera",
	"Player",
	"GameController",
}

// IsBuiltinTag reports whether the specified tag is one of Unity's built-in
// tags.
func IsBuiltinTag(tag string) bool {
	for _, builtin := range BuiltinTags {
		if tag == builtin {
			return true
		}
	}
	return false
}
