// Copyright 2026 The Kavorites Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/koudijs/kavorites/internal/ingress"
)

// apiGet routes a request through the full router so middleware applies
func apiGet(srv *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

var _ = Describe("API wire format", func() {
	Context("GET /api/ingresses", func() {
		It("renders enabled ingresses with projected URLs", func() {
			pathType := networkingv1.PathTypePrefix
			clientset := fake.NewClientset(
				&corev1.Namespace{
					ObjectMeta: metav1.ObjectMeta{Name: "demo"},
				},
				&networkingv1.Ingress{
					ObjectMeta: metav1.ObjectMeta{
						Name:      "blog",
						Namespace: "demo",
						Labels:    map[string]string{"app": "blog"},
					},
					Spec: networkingv1.IngressSpec{
						Rules: []networkingv1.IngressRule{
							{
								Host: "blog.example.com",
								IngressRuleValue: networkingv1.IngressRuleValue{
									HTTP: &networkingv1.HTTPIngressRuleValue{
										Paths: []networkingv1.HTTPIngressPath{
											{
												Path:     "",
												PathType: &pathType,
												Backend: networkingv1.IngressBackend{
													Service: &networkingv1.IngressServiceBackend{
														Name: "blog-web",
														Port: networkingv1.ServiceBackendPort{Number: 80},
													},
												},
											},
										},
									},
								},
							},
						},
					},
					Status: networkingv1.IngressStatus{
						LoadBalancer: networkingv1.IngressLoadBalancerStatus{
							Ingress: []networkingv1.IngressLoadBalancerIngress{
								{IP: "203.0.113.10"},
							},
						},
					},
				},
				&networkingv1.Ingress{
					ObjectMeta: metav1.ObjectMeta{
						Name:        "internal-tool",
						Namespace:   "demo",
						Annotations: map[string]string{ingress.EnabledAnnotation: "false"},
					},
					Spec: networkingv1.IngressSpec{
						Rules: []networkingv1.IngressRule{
							{Host: "tools.example.com"},
						},
					},
				},
				&networkingv1.Ingress{
					ObjectMeta: metav1.ObjectMeta{
						Name:        "site",
						Namespace:   "demo",
						Annotations: map[string]string{ingress.EnabledAnnotation: "true"},
					},
					Spec: networkingv1.IngressSpec{
						TLS: []networkingv1.IngressTLS{
							{Hosts: []string{"site.example.com"}},
						},
						Rules: []networkingv1.IngressRule{
							{
								Host: "site.example.com",
								IngressRuleValue: networkingv1.IngressRuleValue{
									HTTP: &networkingv1.HTTPIngressRuleValue{
										Paths: []networkingv1.HTTPIngressPath{
											{
												Path:     "/shop",
												PathType: &pathType,
												Backend: networkingv1.IngressBackend{
													Service: &networkingv1.IngressServiceBackend{
														Name: "storefront",
														Port: networkingv1.ServiceBackendPort{Number: 8443},
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			)
			srv := NewServer("127.0.0.1", 8080, ingress.NewScanner(clientset, true))

			rec := apiGet(srv, "/api/ingresses")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"ingresses": [
					{
						"name": "blog",
						"namespace": "demo",
						"creation_timestamp": null,
						"urls": [
							{
								"url": "http://blog.example.com/",
								"path": "/",
								"service_name": "blog-web",
								"service_port": 80
							}
						],
						"annotations": {},
						"labels": {"app": "blog"},
						"status": "Ready"
					},
					{
						"name": "site",
						"namespace": "demo",
						"creation_timestamp": null,
						"urls": [
							{
								"url": "https://site.example.com/shop",
								"path": "/shop",
								"service_name": "storefront",
								"service_port": 8443
							}
						],
						"annotations": {"kavorites.koudijs.app/enabled": "true"},
						"labels": {},
						"status": "Pending"
					}
				],
				"count": 2
			}`))
		})

		It("renders an empty list as an empty array", func() {
			clientset := fake.NewClientset(
				&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "empty"}},
			)
			srv := NewServer("127.0.0.1", 8080, ingress.NewScanner(clientset, true))

			rec := apiGet(srv, "/api/ingresses")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"ingresses": [], "count": 0}`))
		})

		It("reports the scan error when the namespace listing fails", func() {
			clientset := fake.NewClientset()
			clientset.PrependReactor("list", "namespaces",
				func(action k8stesting.Action) (bool, runtime.Object, error) {
					return true, nil, errors.New("cluster unreachable")
				})
			srv := NewServer("127.0.0.1", 8080, ingress.NewScanner(clientset, true))

			rec := apiGet(srv, "/api/ingresses")

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).To(MatchJSON(`{"error": "failed to list namespaces: cluster unreachable"}`))
		})

		It("fails when no Kubernetes client is configured", func() {
			srv := NewServer("127.0.0.1", 8080, nil)

			rec := apiGet(srv, "/api/ingresses")

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).To(MatchJSON(`{"error": "Kubernetes client not available"}`))
		})
	})

	Context("GET /api/health", func() {
		It("reports an available Kubernetes client", func() {
			clientset := fake.NewClientset()
			srv := NewServer("127.0.0.1", 8080, ingress.NewScanner(clientset, true))

			rec := apiGet(srv, "/api/health")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"status": "healthy", "k8s_client_available": true}`))
		})

		It("stays healthy without a Kubernetes client", func() {
			srv := NewServer("127.0.0.1", 8080, nil)

			rec := apiGet(srv, "/api/health")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"status": "healthy", "k8s_client_available": false}`))
		})
	})
})
