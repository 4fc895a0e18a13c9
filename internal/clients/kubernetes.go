package clients

import (
	"context"
	"fmt"

	"onboarding-backend/internal/logger"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// KubernetesOrchestrator implements Orchestrator with client-go
type KubernetesOrchestrator struct {
	clientset kubernetes.Interface
}

// NewKubernetesOrchestrator connects to basePath with a bearer token, or to the
// in-cluster API server when basePath is empty
func NewKubernetesOrchestrator(basePath, token string, insecure bool) (*KubernetesOrchestrator, error) {
	var config *rest.Config
	if basePath == "" {
		inCluster, err := rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load in-cluster kubernetes config: %w", err)
		}
		config = inCluster
	} else {
		config = &rest.Config{
			Host:            basePath,
			BearerToken:     token,
			TLSClientConfig: rest.TLSClientConfig{Insecure: insecure},
		}
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return &KubernetesOrchestrator{clientset: clientset}, nil
}

// NewKubernetesOrchestratorWithClientset wraps an existing clientset
func NewKubernetesOrchestratorWithClientset(clientset kubernetes.Interface) *KubernetesOrchestrator {
	return &KubernetesOrchestrator{clientset: clientset}
}

// CreateTLSSecret creates the kubernetes.io/tls secret, replacing it when it already exists
func (o *KubernetesOrchestrator) CreateTLSSecret(ctx context.Context, namespace, name string, cert, key []byte) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    map[string]string{"app.kubernetes.io/managed-by": "onboarding-backend"},
		},
		Type: corev1.SecretTypeTLS,
		Data: map[string][]byte{
			corev1.TLSCertKey:       cert,
			corev1.TLSPrivateKeyKey: key,
		},
	}

	secrets := o.clientset.CoreV1().Secrets(namespace)
	_, err := secrets.Create(ctx, secret, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		logger.WithContext(ctx).WithField("secret", name).Info("tls secret exists, updating")
		_, err = secrets.Update(ctx, secret, metav1.UpdateOptions{})
	}
	if err != nil {
		return fmt.Errorf("failed to create tls secret %s/%s: %w", namespace, name, err)
	}
	return nil
}

// CreateIngress creates the ingress, replacing it when it already exists
func (o *KubernetesOrchestrator) CreateIngress(ctx context.Context, namespace string, spec IngressSpec) error {
	ingress := buildIngress(namespace, spec)

	ingresses := o.clientset.NetworkingV1().Ingresses(namespace)
	_, err := ingresses.Create(ctx, ingress, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		logger.WithContext(ctx).WithField("ingress", spec.Name).Info("ingress exists, updating")
		_, err = ingresses.Update(ctx, ingress, metav1.UpdateOptions{})
	}
	if err != nil {
		return fmt.Errorf("failed to create ingress %s/%s: %w", namespace, spec.Name, err)
	}
	return nil
}

func buildIngress(namespace string, spec IngressSpec) *networkingv1.Ingress {
	pathType := networkingv1.PathTypePrefix
	path := spec.Path
	if path == "" {
		path = "/"
	}

	return &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:        spec.Name,
			Namespace:   namespace,
			Annotations: spec.Annotations,
			Labels:      map[string]string{"app.kubernetes.io/managed-by": "onboarding-backend"},
		},
		Spec: networkingv1.IngressSpec{
			TLS: []networkingv1.IngressTLS{{
				Hosts:      []string{spec.Host},
				SecretName: spec.TLSSecret,
			}},
			Rules: []networkingv1.IngressRule{{
				Host: spec.Host,
				IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{
						Paths: []networkingv1.HTTPIngressPath{{
							Path:     path,
							PathType: &pathType,
							Backend: networkingv1.IngressBackend{
								Service: &networkingv1.IngressServiceBackend{
									Name: spec.ServiceName,
									Port: networkingv1.ServiceBackendPort{Number: spec.ServicePort},
								},
							},
						}},
					},
				},
			}},
		},
	}
}
