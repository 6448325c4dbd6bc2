package graph

import (
	"footygraph/lib/util/serviceutil"
	"footygraph/proto/footygraph/graph/v1/graphv1connect"

	"connectrpc.com/connect"
)

// NewClient calls a graph service over connect, authenticating with
// accessToken when it is not empty.
func NewClient(httpClient connect.HTTPClient, baseURL, accessToken string) graphv1connect.GraphServiceClient {
	return graphv1connect.NewInstrumentedGraphServiceClient(
		graphv1connect.NewGraphServiceClient(
			httpClient,
			baseURL,
			connect.WithInterceptors(serviceutil.ProvideAccessTokenInterceptor(accessToken)),
		),
	)
}
