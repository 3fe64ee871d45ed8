package domain

import "go.trai.ch/zerr"

// TargetID identifies a native project or solution file.
type TargetID string

const (
	// TargetPhone is the Windows Phone 8.1 project.
	TargetPhone TargetID = "phone"
	// TargetStore is the Windows 8.1 store project.
	TargetStore TargetID = "store"
	// TargetStore80 is the Windows 8.0 store project.
	TargetStore80 TargetID = "store80"
	// TargetSolution2012 is the Visual Studio 2012 solution that legacy MSBuild builds instead of TargetStore.
	TargetSolution2012 TargetID = "solution2012"
)

// Target describes a build target.
type Target struct {
	ID TargetID
	// File is the project or solution file, relative to the project root.
	File string
	// RequiresModernToolchain is set for targets that legacy MSBuild cannot build.
	RequiresModernToolchain bool
}

func (t Target) String() string {
	return t.File
}

var (
	// PhoneTarget builds CordovaApp.Phone.jsproj.
	PhoneTarget = Target{ID: TargetPhone, File: "CordovaApp.Phone.jsproj", RequiresModernToolchain: true}
	// StoreTarget builds CordovaApp.Store.jsproj.
	StoreTarget = Target{ID: TargetStore, File: "CordovaApp.Store.jsproj", RequiresModernToolchain: true}
	// Store80Target builds CordovaApp.Store80.jsproj.
	Store80Target = Target{ID: TargetStore80, File: "CordovaApp.Store80.jsproj"}
	// Solution2012Target builds CordovaApp.vs2012.sln.
	Solution2012Target = Target{ID: TargetSolution2012, File: "CordovaApp.vs2012.sln"}
)

// Preference names read from config.xml.
const (
	PreferenceStoreTargetVersion = "windows-target-version"
	PreferencePhoneTargetVersion = "windows-phone-target-version"
)

// StoreTargetVersion is a recognized windows-target-version value.
type StoreTargetVersion int

const (
	// StoreVersionUnknown is any value without a known store target.
	StoreVersionUnknown StoreTargetVersion = iota
	// StoreVersion80 is Windows 8.0, declared as "8" or "8.0".
	StoreVersion80
	// StoreVersion81 is Windows 8.1.
	StoreVersion81
)

// ParseStoreTargetVersion maps a windows-target-version value to its version.
func ParseStoreTargetVersion(value string) (StoreTargetVersion, error) {
	switch value {
	case "8", "8.0":
		return StoreVersion80, nil
	case "8.1":
		return StoreVersion81, nil
	default:
		return StoreVersionUnknown, unsupportedVersion(PreferenceStoreTargetVersion, value)
	}
}

// Target returns the store target built for the version.
func (v StoreTargetVersion) Target() (Target, bool) {
	switch v {
	case StoreVersion80:
		return Store80Target, true
	case StoreVersion81:
		return StoreTarget, true
	default:
		return Target{}, false
	}
}

// PhoneTargetVersion is a recognized windows-phone-target-version value.
type PhoneTargetVersion int

const (
	// PhoneVersionUnknown is any value without a known phone target.
	PhoneVersionUnknown PhoneTargetVersion = iota
	// PhoneVersion81 is Windows Phone 8.1.
	PhoneVersion81
)

// ParsePhoneTargetVersion maps a windows-phone-target-version value to its version.
func ParsePhoneTargetVersion(value string) (PhoneTargetVersion, error) {
	switch value {
	case "8.1":
		return PhoneVersion81, nil
	default:
		return PhoneVersionUnknown, unsupportedVersion(PreferencePhoneTargetVersion, value)
	}
}

// Target returns the phone target built for the version.
func (v PhoneTargetVersion) Target() (Target, bool) {
	if v == PhoneVersion81 {
		return PhoneTarget, true
	}
	return Target{}, false
}

func unsupportedVersion(preference, value string) error {
	err := zerr.Wrap(ErrUnsupportedTargetVersion, "unsupported "+preference+" value: "+value)
	return zerr.With(zerr.With(err, "preference", preference), "value", value)
}

// ResolvedTargetSet is the ordered set of targets to build.
type ResolvedTargetSet struct {
	// Targets are the targets to build, store before phone.
	Targets []Target
	// Skipped are the targets removed because the toolchain cannot build them.
	Skipped []Target
}

// Degraded reports whether toolchain filtering removed any target.
func (s ResolvedTargetSet) Degraded() bool {
	return len(s.Skipped) > 0
}
