package graph

import (
	"net/http"

	"footygraph/lib/util/serviceutil"
	"footygraph/proto/footygraph/graph/v1/graphv1connect"

	"connectrpc.com/connect"
)

// NewHandler mounts every procedure of the service, requests must carry
// accessToken as a bearer token unless it is empty.
func NewHandler(service graphv1connect.GraphServiceHandler, accessToken string) (string, http.Handler, error) {
	otelInterceptor, err := serviceutil.NewConnectOtelInterceptor()
	if err != nil {
		return "", nil, err
	}
	path, handler := graphv1connect.NewGraphServiceHandler(
		service,
		connect.WithInterceptors(
			otelInterceptor,
			serviceutil.VerifyAccessTokenInterceptor(accessToken),
		),
	)
	return path, handler, nil
}
