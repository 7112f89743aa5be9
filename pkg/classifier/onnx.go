package classifier

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"EcoSortAI/pkg/preprocess"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxClassifier runs the exported waste model through ONNX Runtime. Loaded
// once at process start; read-only afterwards, so concurrent Predict calls
// only contend inside the runtime itself.
type onnxClassifier struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	modelName  string
}

// NewONNXClassifier loads the model from ECOSORT_MODEL_PATH (default
// models/ecosortai_final_model.onnx) and creates an inference session. A
// load failure is returned to the caller, which treats it as fatal: no
// fallback model, no retry.
func NewONNXClassifier() (IClassifier, error) {
	modelPath := os.Getenv("ECOSORT_MODEL_PATH")
	if modelPath == "" {
		modelPath = "models/ecosortai_final_model.onnx"
	}

	// The runtime shared library ships alongside the model file unless
	// overridden explicitly.
	libPath := os.Getenv("ECOSORT_ORT_LIB")
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	}

	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected a single image input, got %d", len(inputs))
	}
	if len(outputs) != 1 {
		return nil, fmt.Errorf("onnx: expected a single probability output, got %d", len(outputs))
	}

	outDims := outputs[0].Dimensions
	if len(outDims) != 2 || outDims[len(outDims)-1] != int64(len(modelLabels)) {
		return nil, fmt.Errorf("onnx: expected output shape (batch, %d), got %v",
			len(modelLabels), outDims)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxClassifier{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputs[0].Name,
		modelName:  filepath.Base(modelPath),
	}, nil
}

func (c *onnxClassifier) Predict(t *preprocess.Tensor) ([]float32, error) {
	inShape := ort.NewShape(t.Shape()...)
	tIn, err := ort.NewTensor(inShape, t.Data)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	outShape := ort.NewShape(1, int64(len(modelLabels)))
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	err = c.session.Run(
		[]ort.Value{tIn},
		[]ort.Value{tOut},
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before the tensor is destroyed.
	src := tOut.GetData()
	probs := make([]float32, len(src))
	copy(probs, src)
	return probs, nil
}

func (c *onnxClassifier) Labels() []string {
	return ModelLabels()
}

func (c *onnxClassifier) ModelName() string {
	return c.modelName
}

func (c *onnxClassifier) Close() error {
	return c.session.Destroy()
}
