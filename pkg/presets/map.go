package presets

import (
	"sort"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
	"pkg.jsn.cam/fanreduce/pkg/pipeline"
	"pkg.jsn.cam/fanreduce/pkg/presets/linededup"
	"pkg.jsn.cam/fanreduce/pkg/presets/linefold"
	"pkg.jsn.cam/fanreduce/pkg/presets/lines"
	"pkg.jsn.cam/fanreduce/pkg/presets/longest"
	"pkg.jsn.cam/fanreduce/pkg/presets/maxvalue"
	"pkg.jsn.cam/fanreduce/pkg/presets/numstats"
	"pkg.jsn.cam/fanreduce/pkg/presets/wordcount"
)

var Presets = map[string]pipeline.Preset{
	"lines":     lines.LinesPreset{},
	"linededup": linededup.LineDedupPreset{},
	"linefold":  linefold.LineFoldPreset{},
	"wordcount": wordcount.WordCountPreset{},
	"maxvalue":  maxvalue.MaxValuePreset{},
	"numstats":  numstats.NumStatsPreset{},
	"longest":   longest.LongestPreset{},
}

func IsValidPreset(name string) bool {
	_, exists := Presets[name]
	return exists
}

func GetPreset(name string) pipeline.Preset {
	return Presets[name]
}

func ListPresets() []string {
	var names []string
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetDescription(name string) (string, error) {
	if preset, exists := Presets[name]; exists {
		return preset.Description(), nil
	}
	return "", fanreduce.ErrUnknownPreset
}
