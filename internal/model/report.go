package model

// FileReport classifies the paths that affect a module's image build.
// Within each list entries are unique by canonical filesystem identity and
// keep the order of their first occurrence. De-duplication never crosses
// lists: build and inputs are tracked independently.
type FileReport struct {
	Build  []Path // build descriptors; a change invalidates the build definition
	Inputs []Path // source/resource roots and external artifacts
	Ignore []Path // paths excluded from watching
}
