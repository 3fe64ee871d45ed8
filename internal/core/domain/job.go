package domain

const legacyAnyCPU = "any cpu"

// BuildJob is one (target, architecture) build invocation.
type BuildJob struct {
	Target       Target
	Architecture string
}

func (j BuildJob) String() string {
	return j.Target.File + " (" + j.Architecture + ")"
}

// NormalizeArchitecture rewrites the legacy "any cpu" spelling to "anycpu".
// Every other token is returned unchanged.
func NormalizeArchitecture(arch string) string {
	if arch == legacyAnyCPU {
		return DefaultArchitecture
	}
	return arch
}
