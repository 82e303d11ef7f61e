//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const advocatesFixture = `{"data": [
  {"firstName": "Jane", "lastName": "Doe", "city": "Austin", "degree": "MD",
   "specialties": ["Cardiology", "Sleep medicine"], "yearsOfExperience": 5, "phoneNumber": 7375550100},
  {"firstName": "Bob", "lastName": "Stone", "city": "Dallas", "degree": "PhD",
   "specialties": ["Pediatrics"], "yearsOfExperience": 12, "phoneNumber": 2145559876},
  {"firstName": "Ana", "lastName": "Reyes", "city": "El Paso", "degree": "MSW",
   "specialties": [], "yearsOfExperience": 3, "phoneNumber": 9155550142}
]}`

// WriteDataset writes the advocates fixture into the workspace
func (tf *TUITestFramework) WriteDataset() (string, error) {
	return tf.writeFile("advocates.json", advocatesFixture)
}

// WriteConfig writes a config that logs inside the workspace and uses a short quiet period
func (tf *TUITestFramework) WriteConfig(debounce string) (string, error) {
	body := fmt.Sprintf(`version = 1

[search]
debounce = %q

[logging]
level = "debug"
file = %q
`, debounce, filepath.Join(tf.workspace, "advocates.log"))
	return tf.writeFile("config.toml", body)
}

// StartWithDataset writes both fixtures and launches the TUI against them
func (tf *TUITestFramework) StartWithDataset() error {
	cfg, err := tf.WriteConfig("150ms")
	if err != nil {
		return err
	}
	data, err := tf.WriteDataset()
	if err != nil {
		return err
	}
	return tf.StartApp("--config", cfg, "--file", data)
}

func (tf *TUITestFramework) writeFile(name, body string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", err
	}
	return path, nil
}
