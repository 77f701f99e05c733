package block

import "github.com/df-mc/dragonfly/server/block/cube"

// postProfile is the profile of posts that carry blocks on the centre of their top and bottom only.
var postProfile = NoProfile.With(cube.FaceUp, SupportCenter).With(cube.FaceDown, SupportCenter)

var (
	OakFence         = Register(Kind{Identifier: "minecraft:oak_fence", Profile: postProfile})
	NetherBrickFence = Register(Kind{Identifier: "minecraft:nether_brick_fence", Profile: postProfile})
)
