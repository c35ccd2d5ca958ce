package systems

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
)

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Collider
		want bool
	}{
		{
			name: "overlapping",
			a:    components.Collider{X: 0, Y: 0, Radius: 10},
			b:    components.Collider{X: 15, Y: 0, Radius: 10},
			want: true,
		},
		{
			name: "touching counts",
			a:    components.Collider{X: 0, Y: 0, Radius: 10},
			b:    components.Collider{X: 20, Y: 0, Radius: 10},
			want: true,
		},
		{
			name: "apart",
			a:    components.Collider{X: 0, Y: 0, Radius: 10},
			b:    components.Collider{X: 20.5, Y: 0, Radius: 10},
			want: false,
		},
		{
			name: "diagonal 3-4-5",
			a:    components.Collider{X: 100, Y: 100, Radius: 10},
			b:    components.Collider{X: 130, Y: 140, Radius: 40},
			want: true,
		},
		{
			name: "same center",
			a:    components.Collider{X: 5, Y: 5, Radius: 1},
			b:    components.Collider{X: 5, Y: 5, Radius: 1},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCollision(tt.a, tt.b); got != tt.want {
				t.Errorf("CheckCollision(a, b) = %v, want %v", got, tt.want)
			}
			// Symmetric.
			if got := CheckCollision(tt.b, tt.a); got != tt.want {
				t.Errorf("CheckCollision(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}
