package k8s

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

type Service struct {
	Client    kubernetes.Interface
	Namespace string
}

func New(namespace string) (*Service, error) {
	svc := &Service{
		Namespace: namespace,
	}

	config, err := generateKubeConfig()
	if err != nil {
		return svc, err
	}

	c, err := kubernetes.NewForConfig(config)
	if err != nil {
		return svc, err
	}

	svc.Client = c

	return svc, nil
}

func (s *Service) GetConfigMap(ctx context.Context, name string) (*corev1.ConfigMap, error) {
	return s.Client.CoreV1().ConfigMaps(s.Namespace).Get(ctx, name, metav1.GetOptions{})
}

func generateKubeConfig() (*rest.Config, error) {
	var config *rest.Config

	config, err := rest.InClusterConfig()

	if !errors.Is(err, rest.ErrNotInCluster) {
		return config, err
	}

	kubeconfig := os.Getenv("KUBECONFIG")
	if kubeconfig == "" {
		kubeconfig = filepath.Join(os.Getenv("HOME"), ".kube", "config")
	}

	return clientcmd.BuildConfigFromFlags("", kubeconfig)
}
