package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

const PRESET_FILE = ".keyperiod.json"

type Preset struct {
	Name  string `json:"name"`
	Timer uint32 `json:"timer"`
	Key   uint16 `json:"key"`
	Width int    `json:"width"`
}

type PresetManager struct {
	Presets    []Preset
	PresetPath string
	File       *os.File
	FileInfo   os.FileInfo
}

func NewPresetManager(filePath string) (*PresetManager, error) {
	f, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open preset file")
	}

	fileInfo, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "stat preset file")
	}

	return &PresetManager{
		File:       f,
		PresetPath: filePath,
		FileInfo:   fileInfo,
		Presets:    []Preset{},
	}, nil
}

func (pm *PresetManager) IsFileNotEmpty() bool {
	return pm.FileInfo.Size() > 0
}

func (pm *PresetManager) LoadPresets() error {
	if pm.IsFileNotEmpty() {
		if err := json.NewDecoder(pm.File).Decode(&pm.Presets); err != nil {
			return errors.Wrapf(err, "decode %s", pm.PresetPath)
		}
	}
	return nil
}

func (pm *PresetManager) GetPresetByName(name string) *Preset {
	for i := range pm.Presets {
		if pm.Presets[i].Name == name {
			return &pm.Presets[i]
		}
	}
	return nil
}

func (pm *PresetManager) WritePresets() error {
	data, err := json.MarshalIndent(pm.Presets, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode presets")
	}

	if err := os.WriteFile(pm.PresetPath, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", pm.PresetPath)
	}
	return nil
}

func presetPath() string {
	return UserHomeDir() + PRESET_FILE
}

func initPresetManager() (*PresetManager, error) {
	pm, err := NewPresetManager(presetPath())
	if err != nil {
		return nil, err
	}
	defer pm.File.Close()

	if err := pm.LoadPresets(); err != nil {
		return nil, err
	}
	return pm, nil
}

func LoadPreset(name string) (Preset, error) {
	pm, err := initPresetManager()
	if err != nil {
		return Preset{}, err
	}

	p := pm.GetPresetByName(name)
	if p == nil {
		return Preset{}, errors.Errorf("`%v` preset not found", name)
	}
	return *p, nil
}

func CreatePreset(preset Preset) error {
	pm, err := initPresetManager()
	if err != nil {
		return err
	}

	if pm.GetPresetByName(preset.Name) != nil {
		return errors.Errorf("preset `%v` already exists", preset.Name)
	}

	pm.Presets = append(pm.Presets, preset)
	return pm.WritePresets()
}

func DeletePreset(name string) error {
	pm, err := initPresetManager()
	if err != nil {
		return err
	}

	if pm.GetPresetByName(name) == nil {
		return errors.Errorf("`%v` preset not found", name)
	}

	kept := pm.Presets[:0]
	for _, p := range pm.Presets {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	pm.Presets = kept

	return pm.WritePresets()
}
