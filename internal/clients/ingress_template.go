package clients

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// IngressTemplate holds the fixed parts of every enterprise ingress
type IngressTemplate struct {
	ServiceName string            `yaml:"serviceName"`
	ServicePort int32             `yaml:"servicePort"`
	Path        string            `yaml:"path"`
	Annotations map[string]string `yaml:"annotations"`
}

// DefaultIngressTemplate routes to serviceName:8080 through nginx with large
// bodies and ten minute proxy timeouts
func DefaultIngressTemplate(serviceName string) *IngressTemplate {
	return &IngressTemplate{
		ServiceName: serviceName,
		ServicePort: 8080,
		Path:        "/",
		Annotations: map[string]string{
			"nginx.ingress.kubernetes.io/proxy-body-size":         "35m",
			"nginx.ingress.kubernetes.io/client-body-buffer-size": "35m",
			"nginx.ingress.kubernetes.io/proxy-connect-timeout":   "600",
			"nginx.ingress.kubernetes.io/proxy-send-timeout":      "600",
			"nginx.ingress.kubernetes.io/proxy-read-timeout":      "600",
		},
	}
}

// LoadIngressTemplate reads a YAML template from fs. Fields missing from the
// file keep the defaults; an empty path returns the defaults.
func LoadIngressTemplate(fs afero.Fs, path, serviceName string) (*IngressTemplate, error) {
	template := DefaultIngressTemplate(serviceName)
	if path == "" {
		return template, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingress template %s: %w", path, err)
	}

	var loaded IngressTemplate
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse ingress template %s: %w", path, err)
	}

	if loaded.ServiceName != "" {
		template.ServiceName = loaded.ServiceName
	}
	if loaded.ServicePort != 0 {
		template.ServicePort = loaded.ServicePort
	}
	if loaded.Path != "" {
		template.Path = loaded.Path
	}
	for key, value := range loaded.Annotations {
		template.Annotations[key] = value
	}
	return template, nil
}

// Spec renders the template for one host
func (t *IngressTemplate) Spec(name, host, tlsSecret string) IngressSpec {
	annotations := make(map[string]string, len(t.Annotations))
	for key, value := range t.Annotations {
		annotations[key] = value
	}
	return IngressSpec{
		Name:        name,
		Host:        host,
		TLSSecret:   tlsSecret,
		ServiceName: t.ServiceName,
		ServicePort: t.ServicePort,
		Path:        t.Path,
		Annotations: annotations,
	}
}
