// Package grpc provides gRPC server interceptors that resolve the signed-in
// user's email address from Azure AD B2C claims carried in request metadata.
//
// The interceptors decode tokens without verifying them. Run them behind an
// interceptor that has already authenticated the call.
//
// # Basic Usage
//
//	interceptor, err := b2cgrpc.New(
//	    b2cgrpc.WithEmailRequired(true),
//	    b2cgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	server := grpc.NewServer(
//	    grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
//	    grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
//	)
//
// Handlers read the result with GetEmail:
//
//	func (s *server) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
//	    res, err := b2cgrpc.GetEmail(ctx)
//	    if err != nil {
//	        return nil, status.Error(codes.Internal, "failed to get email")
//	    }
//	    return &pb.User{Email: res.Email}, nil
//	}
package grpc
